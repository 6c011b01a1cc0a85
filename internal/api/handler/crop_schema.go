package handler

import (
	"time"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

type cropRequest struct {
	Name          string `json:"name"           validate:"required,max=100"`
	SowingStart   int    `json:"sowing_start"   validate:"min=0,max=12"`
	SowingEnd     int    `json:"sowing_end"     validate:"min=0,max=12"`
	PlantingStart int    `json:"planting_start" validate:"min=0,max=12"`
	PlantingEnd   int    `json:"planting_end"   validate:"min=0,max=12"`
	HarvestStart  int    `json:"harvest_start"  validate:"min=0,max=12"`
	HarvestEnd    int    `json:"harvest_end"    validate:"min=0,max=12"`
	InHouse       bool   `json:"in_house"`
	InPots        bool   `json:"in_pots"`
	InGarden      bool   `json:"in_garden"`
	InGreenhouse  bool   `json:"in_greenhouse"`
	Description   string `json:"description"`
	Tips          string `json:"tips"`
	Image         string `json:"image"`
}

func (r cropRequest) toInput() ports.CropInput {
	return ports.CropInput{
		Name:          r.Name,
		SowingStart:   time.Month(r.SowingStart),
		SowingEnd:     time.Month(r.SowingEnd),
		PlantingStart: time.Month(r.PlantingStart),
		PlantingEnd:   time.Month(r.PlantingEnd),
		HarvestStart:  time.Month(r.HarvestStart),
		HarvestEnd:    time.Month(r.HarvestEnd),
		InHouse:       r.InHouse,
		InPots:        r.InPots,
		InGarden:      r.InGarden,
		InGreenhouse:  r.InGreenhouse,
		Description:   r.Description,
		Tips:          r.Tips,
		Image:         r.Image,
	}
}

type cropResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	SowingStart   int    `json:"sowing_start,omitempty"`
	SowingEnd     int    `json:"sowing_end,omitempty"`
	PlantingStart int    `json:"planting_start,omitempty"`
	PlantingEnd   int    `json:"planting_end,omitempty"`
	HarvestStart  int    `json:"harvest_start,omitempty"`
	HarvestEnd    int    `json:"harvest_end,omitempty"`
	InHouse       bool   `json:"in_house"`
	InPots        bool   `json:"in_pots"`
	InGarden      bool   `json:"in_garden"`
	InGreenhouse  bool   `json:"in_greenhouse"`
	Description   string `json:"description,omitempty"`
	Tips          string `json:"tips,omitempty"`
	Image         string `json:"image,omitempty"`
}

func toCropResponse(crop *domain.Crop) cropResponse {
	return cropResponse{
		ID:            crop.ID,
		Name:          crop.Name,
		SowingStart:   int(crop.SowingStart),
		SowingEnd:     int(crop.SowingEnd),
		PlantingStart: int(crop.PlantingStart),
		PlantingEnd:   int(crop.PlantingEnd),
		HarvestStart:  int(crop.HarvestStart),
		HarvestEnd:    int(crop.HarvestEnd),
		InHouse:       crop.InHouse,
		InPots:        crop.InPots,
		InGarden:      crop.InGarden,
		InGreenhouse:  crop.InGreenhouse,
		Description:   crop.Description,
		Tips:          crop.Tips,
		Image:         crop.Image,
	}
}

type listCropsResponse struct {
	Data       []cropResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func toListCropsResponse(crops []domain.Crop, info ports.PageInfo) listCropsResponse {
	data := make([]cropResponse, 0, len(crops))
	for i := range crops {
		data = append(data, toCropResponse(&crops[i]))
	}
	return listCropsResponse{Data: data, Pagination: toPaginationResponse(info)}
}
