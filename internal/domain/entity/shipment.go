// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
)

// Sender is the shipper contact. Every field is required on submit.
type Sender struct {
	Name    string `json:"name" firestore:"name"`
	Email   string `json:"email" firestore:"email"`
	Phone   string `json:"phone" firestore:"phone"`
	City    string `json:"city" firestore:"city"`
	State   string `json:"state" firestore:"state"`
	Country string `json:"country" firestore:"country"`
}

// Receiver is the consignee contact. Every field is required on submit.
type Receiver struct {
	Name    string `json:"name" firestore:"name"`
	Email   string `json:"email" firestore:"email"`
	Phone   string `json:"phone" firestore:"phone"`
	Street  string `json:"street" firestore:"street"`
	City    string `json:"city" firestore:"city"`
	State   string `json:"state" firestore:"state"`
	Country string `json:"country" firestore:"country"`
	Postal  string `json:"postal" firestore:"postal"`
}

// Shipment is one logistics consignment. Field names follow the persisted
// document layout so exports stay portable between the local store and Firestore.
type Shipment struct {
	ID               string   `json:"id" firestore:"-"`                  // Identity key, immutable after creation.
	TrackingNo       string   `json:"trackingNo" firestore:"trackingNo"` // Customer-facing, not unique-enforced.
	Sender           Sender   `json:"sender" firestore:"sender"`
	Receiver         Receiver `json:"receiver" firestore:"receiver"`
	Status           string   `json:"status" firestore:"status"`
	CargoType        string   `json:"cargoType" firestore:"cargoType"`
	ShipmentTitle    string   `json:"shipmentTitle" firestore:"shipmentTitle"`
	CargoName        string   `json:"cargoName" firestore:"cargoName"`
	ModeOfShipment   string   `json:"modeOfShipment" firestore:"modeOfShipment"`
	PaymentMethod    string   `json:"paymentMethod" firestore:"paymentMethod"`
	StatusDate       string   `json:"statusDate" firestore:"statusDate"`
	StatusTime       string   `json:"statusTime" firestore:"statusTime"`
	Location         string   `json:"location" firestore:"location"`
	CarrierRef       string   `json:"carrierRef" firestore:"carrierRef"`
	DepartureDate    string   `json:"departureDate" firestore:"departureDate"`
	DepartureTime    string   `json:"departureTime" firestore:"departureTime"`
	Comments         string   `json:"comments" firestore:"comments"`
	Origin           string   `json:"origin" firestore:"origin"`
	Destination      string   `json:"destination" firestore:"destination"`
	Notes            string   `json:"notes" firestore:"notes"`
	CargoWeightUnit  *string  `json:"cargoWeightUnit" firestore:"cargoWeightUnit"`
	CargoWeightValue *float64 `json:"cargoWeightValue" firestore:"cargoWeightValue"`
	FeaturedImage    *string  `json:"featuredImage" firestore:"featuredImage"` // Data URL or nil.
	CreatedAt        int64    `json:"createdAt" firestore:"createdAt"`         // Unix milliseconds.
	UpdatedAt        int64    `json:"updatedAt" firestore:"updatedAt"`         // Unix milliseconds.
}

// Clone returns a deep copy so callers can hand out snapshots without sharing
// the optional pointer fields.
func (s Shipment) Clone() Shipment {
	out := s
	if s.CargoWeightUnit != nil {
		unit := *s.CargoWeightUnit
		out.CargoWeightUnit = &unit
	}
	if s.CargoWeightValue != nil {
		value := *s.CargoWeightValue
		out.CargoWeightValue = &value
	}
	if s.FeaturedImage != nil {
		image := *s.FeaturedImage
		out.FeaturedImage = &image
	}

	return out
}

// SearchText is the haystack the dashboard search box matches against.
func (s Shipment) SearchText() string {
	return strings.Join([]string{
		s.TrackingNo,
		s.Sender.Name,
		s.Receiver.Name,
		s.Status,
		s.Origin,
		s.Destination,
	}, " ")
}

// Remarks is the free text appended to customer notifications.
func (s Shipment) Remarks() string {
	if s.Comments != "" {
		return s.Comments
	}

	return s.Notes
}

// FieldValue resolves a top-level document field by its persisted name. Numeric
// fields report numeric=true so sorting compares them as numbers.
func (s Shipment) FieldValue(field string) (str string, num float64, numeric bool, ok bool) {
	switch field {
	case "id":
		return s.ID, 0, false, true
	case "trackingNo":
		return s.TrackingNo, 0, false, true
	case "status":
		return s.Status, 0, false, true
	case "cargoType":
		return s.CargoType, 0, false, true
	case "shipmentTitle":
		return s.ShipmentTitle, 0, false, true
	case "cargoName":
		return s.CargoName, 0, false, true
	case "modeOfShipment":
		return s.ModeOfShipment, 0, false, true
	case "paymentMethod":
		return s.PaymentMethod, 0, false, true
	case "statusDate":
		return s.StatusDate, 0, false, true
	case "statusTime":
		return s.StatusTime, 0, false, true
	case "location":
		return s.Location, 0, false, true
	case "carrierRef":
		return s.CarrierRef, 0, false, true
	case "departureDate":
		return s.DepartureDate, 0, false, true
	case "departureTime":
		return s.DepartureTime, 0, false, true
	case "comments":
		return s.Comments, 0, false, true
	case "origin":
		return s.Origin, 0, false, true
	case "destination":
		return s.Destination, 0, false, true
	case "notes":
		return s.Notes, 0, false, true
	case "cargoWeightValue":
		if s.CargoWeightValue == nil {
			return "", 0, true, false
		}

		return "", *s.CargoWeightValue, true, true
	case "createdAt":
		return "", float64(s.CreatedAt), true, true
	case "updatedAt":
		return "", float64(s.UpdatedAt), true, true
	default:
		return "", 0, false, false
	}
}
