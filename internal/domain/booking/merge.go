package booking

import (
	"encoding/json"
	"maps"

	"github.com/jinzhu/copier"

	"hotelfront/internal/pkg/errs"
)

// Merge overlays the server record on the locally known one. Fields the
// server left empty keep their local value, undeclared fields included.
func Merge(local, server Record) (Record, error) {
	merged := local
	merged.Extra = nil
	overlay := server
	overlay.Extra = nil
	if err := copier.CopyWithOption(&merged, &overlay, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return Record{}, errs.Wrap(err, "merge booking records")
	}
	if len(server.SelectedRoomTypes) == 0 {
		merged.SelectedRoomTypes = local.SelectedRoomTypes
	}
	merged.Extra = mergeExtra(local.Extra, server.Extra)
	return merged, nil
}

func mergeExtra(local, server map[string]json.RawMessage) map[string]json.RawMessage {
	if len(local) == 0 && len(server) == 0 {
		return nil
	}
	out := make(map[string]json.RawMessage, len(local)+len(server))
	maps.Copy(out, local)
	maps.Copy(out, server)
	return out
}
