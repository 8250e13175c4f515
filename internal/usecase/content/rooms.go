package content

import (
	"context"
	"encoding/json"
	"net/url"

	"hotelfront/internal/pkg/errs"
)

const roomStatusAvailable = "available"

type RoomType struct {
	Type      string `json:"type"`
	Available bool   `json:"available"`
	Status    string `json:"status"`
}

type roomSummary struct {
	ID         string `json:"id"`
	MongoID    string `json:"_id"`
	RoomType   string `json:"roomType"`
	RoomStatus string `json:"roomStatus"`
}

// RoomByID looks the room up in the cached list first and asks the backend
// for it directly only when the list does not contain it.
func (s *serviceImpl) RoomByID(ctx context.Context, id string) (json.RawMessage, error) {
	res, err := s.Rooms(ctx, false)
	if err != nil {
		s.logger.Warn("room list unavailable, querying room directly", "room_id", id, "error", err)
	} else {
		var rooms []json.RawMessage
		if err := json.Unmarshal(res.Data, &rooms); err == nil {
			for _, raw := range rooms {
				var r roomSummary
				if json.Unmarshal(raw, &r) == nil && (r.ID == id || r.MongoID == id) {
					return raw, nil
				}
			}
		}
	}

	body, err := s.backend.FetchContent(ctx, "/rooms/get-room/"+url.PathEscape(id), "Room not found")
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "room %s", id), errs.ErrRoomNotFound)
	}
	var envelope struct {
		Room json.RawMessage `json:"room"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Room) == 0 || string(envelope.Room) == "null" {
		return nil, errs.Mark(errs.Newf("room %s", id), errs.ErrRoomNotFound)
	}
	return envelope.Room, nil
}

// RoomTypes groups rooms by type. A type is available when any of its rooms is.
func (s *serviceImpl) RoomTypes(ctx context.Context, force bool) ([]RoomType, error) {
	res, err := s.Rooms(ctx, force)
	if err != nil {
		return nil, err
	}

	var rooms []roomSummary
	if err := json.Unmarshal(res.Data, &rooms); err != nil {
		return nil, errs.Wrap(err, "decode rooms")
	}

	index := make(map[string]int)
	types := make([]RoomType, 0)
	for _, r := range rooms {
		i, ok := index[r.RoomType]
		if !ok {
			i = len(types)
			index[r.RoomType] = i
			types = append(types, RoomType{Type: r.RoomType, Status: "Not Available"})
		}
		if r.RoomStatus == roomStatusAvailable {
			types[i].Available = true
			types[i].Status = "Available"
		}
	}
	return types, nil
}
