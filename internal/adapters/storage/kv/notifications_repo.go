package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lost-pet-alerts/internal/domain/notifications"
	"lost-pet-alerts/internal/ports/kvstore"
)

type NotificationsRepo struct {
	store kvstore.Store
}

func NewNotificationsRepo(store kvstore.Store) *NotificationsRepo {
	return &NotificationsRepo{store: store}
}

type storedNotification struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	PetID       string   `json:"petId"`
	PetName     string   `json:"petName"`
	PetType     string   `json:"petType"`
	Description string   `json:"description,omitempty"`
	ImageURI    string   `json:"imageUri,omitempty"`
	Location    string   `json:"location,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	CreatedAt   string   `json:"createdAt"`
}

func (r *NotificationsRepo) LoadAll(ctx context.Context) ([]notifications.Notification, error) {
	raw, ok, err := r.store.Get(ctx, kvstore.KeyNotifications)
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	if !ok {
		return []notifications.Notification{}, nil
	}

	var stored []storedNotification
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}

	out := make([]notifications.Notification, 0, len(stored))
	for _, s := range stored {
		createdAt, _ := time.Parse(time.RFC3339, s.CreatedAt)
		out = append(out, notifications.Notification{
			ID:          s.ID,
			Type:        notifications.Type(s.Type),
			PetID:       s.PetID,
			PetName:     s.PetName,
			PetType:     s.PetType,
			Description: s.Description,
			ImageURI:    s.ImageURI,
			Location:    s.Location,
			Latitude:    s.Latitude,
			Longitude:   s.Longitude,
			CreatedAt:   createdAt,
		})
	}
	return out, nil
}

func (r *NotificationsRepo) SaveAll(ctx context.Context, ns []notifications.Notification) error {
	stored := make([]storedNotification, 0, len(ns))
	for _, n := range ns {
		stored = append(stored, storedNotification{
			ID:          n.ID,
			Type:        string(n.Type),
			PetID:       n.PetID,
			PetName:     n.PetName,
			PetType:     n.PetType,
			Description: n.Description,
			ImageURI:    n.ImageURI,
			Location:    n.Location,
			Latitude:    n.Latitude,
			Longitude:   n.Longitude,
			CreatedAt:   n.CreatedAt.Format(time.RFC3339),
		})
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode notifications: %w", err)
	}
	if err := r.store.Set(ctx, kvstore.KeyNotifications, raw); err != nil {
		return fmt.Errorf("save notifications: %w", err)
	}
	return nil
}
