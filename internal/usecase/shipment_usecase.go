package usecase

import (
	"context"

	"shiptrack/internal/domain/entity"
)

// SenderDraft is the raw sender contact block from the form.
type SenderDraft struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// ReceiverDraft is the raw receiver contact block from the form.
type ReceiverDraft struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Country string `json:"country" validate:"required"`
	Postal  string `json:"postal" validate:"required"`
}

// ShipmentDraft is the unvalidated full-edit form. An empty ID means create.
type ShipmentDraft struct {
	ID             string        `json:"id"`
	TrackingNo     string        `json:"trackingNo"`
	Sender         SenderDraft   `json:"sender"`
	Receiver       ReceiverDraft `json:"receiver"`
	Status         string        `json:"status" validate:"required"`
	CargoType      string        `json:"cargoType" validate:"required"`
	ShipmentTitle  string        `json:"shipmentTitle" validate:"required"`
	CargoName      string        `json:"cargoName" validate:"required"`
	ModeOfShipment string        `json:"modeOfShipment" validate:"required"`
	PaymentMethod  string        `json:"paymentMethod" validate:"required"`
	StatusDate     string        `json:"statusDate" validate:"required"`
	StatusTime     string        `json:"statusTime" validate:"required"`
	Location       string        `json:"location" validate:"required"`
	Origin         string        `json:"origin" validate:"required"`
	Destination    string        `json:"destination" validate:"required"`
	CarrierRef     string        `json:"carrierRef"`
	DepartureDate  string        `json:"departureDate"`
	DepartureTime  string        `json:"departureTime"`
	Comments       string        `json:"comments"`
	Notes          string        `json:"notes"`
	// Weight is free text so "abc" can be rejected with a proper message.
	CargoWeightValue string  `json:"cargoWeightValue" validate:"required_with=CargoWeightUnit"`
	CargoWeightUnit  string  `json:"cargoWeightUnit" validate:"required_with=CargoWeightValue"`
	FeaturedImage    *string `json:"featuredImage"`
}

// QuickEditDraft changes only the status block of an existing shipment.
type QuickEditDraft struct {
	ID         string `json:"id" validate:"required"`
	Status     string `json:"status" validate:"required"`
	StatusDate string `json:"statusDate" validate:"required"`
	StatusTime string `json:"statusTime" validate:"required"`
	Location   string `json:"location" validate:"required"`
	Notes      string `json:"notes"`
}

// ShipmentUsecase defines the mutation pipeline for the dashboard.
type ShipmentUsecase interface {
	// Submit validates draft and creates or updates a shipment. In remote mode
	// the returned record is the optimistic value; the write completes later.
	Submit(ctx context.Context, draft *ShipmentDraft) (*entity.Shipment, error)

	// QuickEdit updates status fields of an existing shipment.
	QuickEdit(ctx context.Context, draft *QuickEditDraft) (*entity.Shipment, error)

	// Delete removes a shipment by id.
	Delete(ctx context.Context, id string) error
}
