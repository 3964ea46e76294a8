package storage

import (
	"encoding/json"
	"fmt"

	"github.com/keshon/datastore"
)

// Storage persists per-guild settings in a flat JSON key-value file.
// Keys are guild IDs; the whole file is rewritten on change.
type Storage struct {
	ds *datastore.DataStore
}

// GuildSettings is everything a guild can customize.
type GuildSettings struct {
	Prefix string   `json:"prefix,omitempty"`
	Volume *float64 `json:"volume,omitempty"`
	Loop   bool     `json:"loop,omitempty"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

func (s *Storage) guildSettings(guildID string) (*GuildSettings, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		return &GuildSettings{}, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling settings: %w", err)
	}

	var settings GuildSettings
	if err := json.Unmarshal(jsonData, &settings); err != nil {
		return nil, fmt.Errorf("error unmarshalling settings: %w", err)
	}
	return &settings, nil
}

// Prefix returns the guild's command prefix, or fallback when unset.
func (s *Storage) Prefix(guildID, fallback string) string {
	settings, err := s.guildSettings(guildID)
	if err != nil || settings.Prefix == "" {
		return fallback
	}
	return settings.Prefix
}

func (s *Storage) SetPrefix(guildID, prefix string) error {
	settings, err := s.guildSettings(guildID)
	if err != nil {
		return err
	}
	settings.Prefix = prefix
	s.ds.Add(guildID, settings)
	return nil
}

// Volume returns the guild's stored volume, or fallback when unset.
func (s *Storage) Volume(guildID string, fallback float64) float64 {
	settings, err := s.guildSettings(guildID)
	if err != nil || settings.Volume == nil {
		return fallback
	}
	return *settings.Volume
}

func (s *Storage) SetVolume(guildID string, volume float64) error {
	settings, err := s.guildSettings(guildID)
	if err != nil {
		return err
	}
	settings.Volume = &volume
	s.ds.Add(guildID, settings)
	return nil
}

func (s *Storage) Loop(guildID string) bool {
	settings, err := s.guildSettings(guildID)
	if err != nil {
		return false
	}
	return settings.Loop
}

func (s *Storage) SetLoop(guildID string, loop bool) error {
	settings, err := s.guildSettings(guildID)
	if err != nil {
		return err
	}
	settings.Loop = loop
	s.ds.Add(guildID, settings)
	return nil
}
