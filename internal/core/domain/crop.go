package domain

import (
	"errors"
	"time"
)

var ErrCropNotFound = errors.New("crop not found")

// Crop describes a plantable crop and its growing calendar. Month fields
// use 1–12 (January–December); zero means unspecified.
type Crop struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	SowingStart   time.Month `json:"sowing_start,omitempty"`
	SowingEnd     time.Month `json:"sowing_end,omitempty"`
	PlantingStart time.Month `json:"planting_start,omitempty"`
	PlantingEnd   time.Month `json:"planting_end,omitempty"`
	HarvestStart  time.Month `json:"harvest_start,omitempty"`
	HarvestEnd    time.Month `json:"harvest_end,omitempty"`
	InHouse       bool       `json:"in_house"`
	InPots        bool       `json:"in_pots"`
	InGarden      bool       `json:"in_garden"`
	InGreenhouse  bool       `json:"in_greenhouse"`
	Description   string     `json:"description,omitempty"`
	Tips          string     `json:"tips,omitempty"`
	Image         string     `json:"image,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
