// Package sbml provides the SBML object model: documents, models and the
// entities they own, the message log produced while reading and
// validating, level/version conversion and document consistency checks.
//
// Every entity embeds SBase for the attributes common to all SBML
// elements. Math is held as *ast.Node and owned exclusively by the field
// it is stored in; formula strings are computed from the tree on demand.
//
// Optional attributes carry an explicit set flag. IsSetX reports whether
// the attribute would be written, independent of its value.
package sbml
