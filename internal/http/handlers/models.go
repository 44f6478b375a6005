package handlers

import (
	"time"

	"github.com/pribylovaa/go-ride-hail/internal/models"
	"github.com/pribylovaa/go-ride-hail/internal/service"
	"github.com/pribylovaa/go-ride-hail/internal/storage"
)

// Входные и выходные DTO REST-слоя. Наружу никогда не отдаём хеш пароля.

type fullNamePayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type vehiclePayload struct {
	Color       string `json:"color"`
	Plate       string `json:"plate"`
	Capacity    int32  `json:"capacity"`
	VehicleType string `json:"vehicleType"`
}

type locationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type registerUserRequest struct {
	FullName fullNamePayload `json:"fullName"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Phone    string          `json:"phone"`
	Role     string          `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerCaptainRequest struct {
	FullName      fullNamePayload `json:"fullName"`
	Email         string          `json:"email"`
	Password      string          `json:"password"`
	Phone         string          `json:"phone"`
	LicenseNumber string          `json:"licenseNumber"`
	VehicleType   string          `json:"vehicleType"`
	Vehicle       vehiclePayload  `json:"vehicle"`
	Location      locationPayload `json:"location"`
}

type updateUserRequest struct {
	FullName *fullNamePayload `json:"fullName"`
	Phone    *string          `json:"phone"`
	Role     *string          `json:"role"`
	IsActive *bool            `json:"isActive"`
}

type presignAvatarRequest struct {
	ContentType   string `json:"contentType"`
	ContentLength int64  `json:"contentLength"`
}

type confirmAvatarRequest struct {
	Key string `json:"key"`
}

type userView struct {
	ID             string          `json:"id"`
	FullName       fullNamePayload `json:"fullName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone,omitempty"`
	Role           string          `json:"role"`
	IsActive       bool            `json:"isActive"`
	ProfilePicture string          `json:"profilePicture,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type captainView struct {
	ID             string          `json:"id"`
	FullName       fullNamePayload `json:"fullName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone,omitempty"`
	LicenseNumber  string          `json:"licenseNumber"`
	VehicleType    string          `json:"vehicleType"`
	Vehicle        vehiclePayload  `json:"vehicle"`
	Location       locationPayload `json:"location"`
	Status         string          `json:"status"`
	ProfilePicture string          `json:"profilePicture,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type uploadView struct {
	UploadURL        string            `json:"uploadUrl"`
	Key              string            `json:"key"`
	ExpiresInSeconds int64             `json:"expiresInSeconds"`
	RequiredHeaders  map[string]string `json:"requiredHeaders,omitempty"`
}

func toUploadView(info *storage.UploadInfo) uploadView {
	return uploadView{
		UploadURL:        info.UploadURL,
		Key:              info.AvatarKey,
		ExpiresInSeconds: int64(info.Expires.Seconds()),
		RequiredHeaders:  info.RequiredHeader,
	}
}

func toUserView(u *models.User) userView {
	return userView{
		ID:             u.ID.String(),
		FullName:       fullNamePayload{FirstName: u.FirstName, LastName: u.LastName},
		Email:          u.Email,
		Phone:          u.Phone,
		Role:           string(u.Role),
		IsActive:       u.IsActive,
		ProfilePicture: u.AvatarURL,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toUserViews(users []models.User) []userView {
	views := make([]userView, 0, len(users))
	for i := range users {
		views = append(views, toUserView(&users[i]))
	}

	return views
}

func toCaptainView(c *models.Captain) captainView {
	return captainView{
		ID:            c.ID.String(),
		FullName:      fullNamePayload{FirstName: c.FirstName, LastName: c.LastName},
		Email:         c.Email,
		Phone:         c.Phone,
		LicenseNumber: c.LicenseNumber,
		VehicleType:   string(c.VehicleType),
		Vehicle: vehiclePayload{
			Color:       c.Vehicle.Color,
			Plate:       c.Vehicle.Plate,
			Capacity:    c.Vehicle.Capacity,
			VehicleType: string(c.Vehicle.Type),
		},
		Location:       locationPayload{Latitude: c.Location.Latitude, Longitude: c.Location.Longitude},
		Status:         string(c.Status),
		ProfilePicture: c.AvatarURL,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toCaptainViews(captains []models.Captain) []captainView {
	views := make([]captainView, 0, len(captains))
	for i := range captains {
		views = append(views, toCaptainView(&captains[i]))
	}

	return views
}

func (r registerUserRequest) toInput() service.RegisterUserInput {
	return service.RegisterUserInput{
		FirstName: r.FullName.FirstName,
		LastName:  r.FullName.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Phone:     r.Phone,
		Role:      models.Role(r.Role),
	}
}

func (r registerCaptainRequest) toInput() service.RegisterCaptainInput {
	return service.RegisterCaptainInput{
		FirstName:     r.FullName.FirstName,
		LastName:      r.FullName.LastName,
		Email:         r.Email,
		Password:      r.Password,
		Phone:         r.Phone,
		LicenseNumber: r.LicenseNumber,
		VehicleType:   models.VehicleType(r.VehicleType),
		Vehicle: service.VehicleInput{
			Color:    r.Vehicle.Color,
			Plate:    r.Vehicle.Plate,
			Capacity: r.Vehicle.Capacity,
			Type:     models.VehicleType(r.Vehicle.VehicleType),
		},
		Location: service.LocationInput{
			Latitude:  r.Location.Latitude,
			Longitude: r.Location.Longitude,
		},
	}
}
