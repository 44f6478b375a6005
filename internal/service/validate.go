package service

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pribylovaa/go-ride-hail/internal/models"
)

// Пороговые значения полей публичного API.
const (
	minNameLen     = 2
	maxNameLen     = 50
	minPasswordLen = 6
	minLicenseLen  = 5
	maxLicenseLen  = 20
	minColorLen    = 2
	maxColorLen    = 30
	minPlateLen    = 5
	maxPlateLen    = 20
	minCapacity    = 1
	maxCapacity    = 10
)

var phoneRe = regexp.MustCompile(`^[+]?[(]?[0-9]{1,3}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,4}[-\s.]?[0-9]{1,9}$`)

// normalizeEmail обрезает пробелы и приводит email к нижнему регистру.
// Уникальность email регистронезависимая, сравнение всегда идёт по
// нормализованной форме.
func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}

	_, err := mail.ParseAddress(email)
	return err == nil
}

func nameError(field, value string) *FieldError {
	value = strings.TrimSpace(value)
	if value == "" {
		return &FieldError{Field: field, Message: field + " is required"}
	}

	if n := utf8.RuneCountInString(value); n < minNameLen || n > maxNameLen {
		return &FieldError{Field: field, Message: field + " must be between 2 and 50 characters"}
	}

	return nil
}

// ValidateUserRegistration — чистая валидация входа регистрации пассажира.
// Возвращает список пополевых ошибок; пустой список означает валидный вход.
func ValidateUserRegistration(in RegisterUserInput) []FieldError {
	var errs []FieldError

	if e := nameError("fullName.firstName", in.FirstName); e != nil {
		errs = append(errs, *e)
	}
	if e := nameError("fullName.lastName", in.LastName); e != nil {
		errs = append(errs, *e)
	}

	if !validEmail(normalizeEmail(in.Email)) {
		errs = append(errs, FieldError{Field: "email", Message: "valid email is required"})
	}

	if utf8.RuneCountInString(strings.TrimSpace(in.Password)) < minPasswordLen {
		errs = append(errs, FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}

	if in.Phone != "" && !phoneRe.MatchString(in.Phone) {
		errs = append(errs, FieldError{Field: "phone", Message: "invalid phone number"})
	}

	if in.Role != "" && !in.Role.Valid() {
		errs = append(errs, FieldError{Field: "role", Message: "role must be user, driver, or admin"})
	}

	return errs
}

// ValidateCaptainRegistration — чистая валидация входа регистрации водителя.
func ValidateCaptainRegistration(in RegisterCaptainInput) []FieldError {
	var errs []FieldError

	if e := nameError("fullName.firstName", in.FirstName); e != nil {
		errs = append(errs, *e)
	}
	if e := nameError("fullName.lastName", in.LastName); e != nil {
		errs = append(errs, *e)
	}

	if !validEmail(normalizeEmail(in.Email)) {
		errs = append(errs, FieldError{Field: "email", Message: "valid email is required"})
	}

	if utf8.RuneCountInString(strings.TrimSpace(in.Password)) < minPasswordLen {
		errs = append(errs, FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}

	if in.Phone != "" && !phoneRe.MatchString(in.Phone) {
		errs = append(errs, FieldError{Field: "phone", Message: "invalid phone number"})
	}

	license := strings.TrimSpace(in.LicenseNumber)
	if n := utf8.RuneCountInString(license); n < minLicenseLen || n > maxLicenseLen {
		errs = append(errs, FieldError{Field: "licenseNumber", Message: "license number must be 5-20 characters"})
	}

	switch in.VehicleType {
	case models.VehicleCar, models.VehicleBike, models.VehicleScooter:
	default:
		errs = append(errs, FieldError{Field: "vehicleType", Message: "vehicle type must be car, bike, or scooter"})
	}

	if n := utf8.RuneCountInString(strings.TrimSpace(in.Vehicle.Color)); n < minColorLen || n > maxColorLen {
		errs = append(errs, FieldError{Field: "vehicle.color", Message: "vehicle color must be 2-30 characters"})
	}

	if n := utf8.RuneCountInString(strings.TrimSpace(in.Vehicle.Plate)); n < minPlateLen || n > maxPlateLen {
		errs = append(errs, FieldError{Field: "vehicle.plate", Message: "vehicle plate number must be 5-20 characters"})
	}

	if in.Vehicle.Capacity < minCapacity || in.Vehicle.Capacity > maxCapacity {
		errs = append(errs, FieldError{Field: "vehicle.capacity", Message: "vehicle capacity must be between 1 and 10"})
	}

	switch in.Vehicle.Type {
	case models.VehicleCar, models.VehicleBike, models.VehicleAutoRickshaw:
	default:
		errs = append(errs, FieldError{Field: "vehicle.vehicleType", Message: "vehicle type must be car, bike, or auto-rickshaw"})
	}

	if in.Location.Latitude < -90 || in.Location.Latitude > 90 {
		errs = append(errs, FieldError{Field: "location.latitude", Message: "latitude must be between -90 and 90"})
	}

	if in.Location.Longitude < -180 || in.Location.Longitude > 180 {
		errs = append(errs, FieldError{Field: "location.longitude", Message: "longitude must be between -180 and 180"})
	}

	return errs
}

// ValidateLogin — минимальная проверка пары email/пароль при входе.
func ValidateLogin(email, password string) []FieldError {
	var errs []FieldError

	if !validEmail(normalizeEmail(email)) {
		errs = append(errs, FieldError{Field: "email", Message: "valid email is required"})
	}

	if utf8.RuneCountInString(password) < minPasswordLen {
		errs = append(errs, FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}

	return errs
}
