package sbml

import (
	"fmt"
	"log/slog"
)

// SetLevelAndVersion converts the document to the given level and
// version.
//
// Converting to Level 2 gives every entity that only has a name an id
// with the same value. Converting to Level 1 first checks the model
// with CheckL1Compatibility; if any check fails the document is left as
// it was and ErrIncompatible is returned. Otherwise each id moves into
// the name where the name is unset. An entity that already has a name
// keeps both fields; Level 1 output writes its id as the name, so a
// warning is logged for every distinct label that will not be written.
func (d *Document) SetLevelAndVersion(level, version int) error {
	if !IsSupported(level, version) {
		return fmt.Errorf("%w: %d.%d", ErrUnsupportedLevel, level, version)
	}
	logger := d.logger
	if d.model != nil && level != d.level {
		switch level {
		case 1:
			if failed := d.CheckL1Compatibility(); failed > 0 {
				return fmt.Errorf("%w: %d failed checks", ErrIncompatible, failed)
			}
			d.idsToL1Names()
		case 2:
			d.model.MoveAllNamesToIDs()
		}
	}
	logger.Log(slog.LevelDebug, "converted document",
		slog.Int("fromLevel", d.level), slog.Int("fromVersion", d.version),
		slog.Int("toLevel", level), slog.Int("toVersion", version))
	d.level, d.version = level, version
	return nil
}

func (d *Document) idsToL1Names() {
	d.model.namedEntities(func(e Element, n *named) {
		if n.idSet && n.nameSet && n.name != n.id {
			d.Log(Message{
				ID:       MsgLabelLost,
				Severity: SeverityWarning,
				Category: CategoryConvert,
				Message: fmt.Sprintf("%s name %q is kept but Level 1 output uses its id %q",
					e.TypeCode(), n.name, n.id),
				Line:   e.base().line,
				Column: e.base().column,
			})
		}
	})
	d.model.MoveAllIDsToNames()
}
