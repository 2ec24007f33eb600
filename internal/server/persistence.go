package server

import (
	"encoding/json"
	"time"

	"decision-city/internal/db"

	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// The audit log is write-only telemetry: events are appended while a room
// lives, and nothing is ever read back into coordinator state. With no
// database configured every persist call is a no-op.

func (s *Server) persistEvent(roomID, eventType string, payload EventPayload) error {
	if s.db == nil {
		return nil
	}
	dbID, err := s.ensureRoomRecord(roomID)
	if err != nil {
		return err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	record := db.Event{
		RoomID:    dbID,
		Type:      eventType,
		Payload:   datatypes.JSON(data),
		CreatedAt: time.Now().UTC(),
	}
	return s.db.Create(&record).Error
}

func (s *Server) persistStage(roomID, stage, eventType string, payload EventPayload) error {
	if s.db == nil {
		return nil
	}
	dbID, err := s.ensureRoomRecord(roomID)
	if err != nil {
		return err
	}
	if err := s.db.Model(&db.Room{}).Where("id = ?", dbID).Update("stage", stage).Error; err != nil {
		return err
	}
	return s.persistEvent(roomID, eventType, payload)
}

func (s *Server) ensureRoomRecord(roomID string) (uint, error) {
	s.dbMu.Lock()
	defer s.dbMu.Unlock()
	if id, ok := s.dbIDs[roomID]; ok {
		return id, nil
	}
	record := db.Room{
		RoomID: roomID,
		Stage:  stageIntro,
	}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		return 0, err
	}
	if record.ID == 0 {
		// Identifier seen in an earlier process; reuse its row.
		if err := s.db.Where("room_id = ?", roomID).First(&record).Error; err != nil {
			return 0, err
		}
	}
	s.dbIDs[roomID] = record.ID
	return record.ID, nil
}
