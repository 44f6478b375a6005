package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleType — тип транспортного средства водителя.
type VehicleType string

const (
	VehicleCar          VehicleType = "car"
	VehicleBike         VehicleType = "bike"
	VehicleScooter      VehicleType = "scooter"
	VehicleAutoRickshaw VehicleType = "auto-rickshaw"
)

// CaptainStatus — текущее состояние водителя.
type CaptainStatus string

const (
	StatusActive   CaptainStatus = "active"
	StatusInactive CaptainStatus = "inactive"
	StatusOnTrip   CaptainStatus = "on-trip"
)

// Vehicle — данные транспортного средства; Plate уникален в коллекции.
type Vehicle struct {
	Color    string
	Plate    string
	Capacity int32
	Type     VehicleType
}

// Location — последняя известная геопозиция водителя.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Captain — внутренняя доменная модель водителя.
// Роль у водителя фиксирована (RoleDriver) и в БД не хранится.
// PasswordHash наружу не сериализуется.
type Captain struct {
	ID            uuid.UUID
	FirstName     string
	LastName      string
	Email         string
	PasswordHash  string
	Phone         string
	LicenseNumber string
	VehicleType   VehicleType
	Status        CaptainStatus
	Vehicle       Vehicle
	Location      Location
	AvatarKey     string
	AvatarURL     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
