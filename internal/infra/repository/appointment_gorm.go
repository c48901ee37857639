package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/provider-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/provider-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/provider-scheduler/internal/httperr"
	"github.com/BruksfildServices01/provider-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Provider
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProviderByID(
	ctx context.Context,
	id uint,
) (*models.Provider, error) {

	var provider models.Provider
	if err := r.db.WithContext(ctx).First(&provider, id).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	providerID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND phone = ?", providerID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		ProviderID: providerID,
		Name:       name,
		Phone:      phone,
		Email:      email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	providerID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"provider_id = ? AND status IN ('pending', 'confirmed') AND start_time < ? AND end_time > ?",
			providerID,
			end,
			start,
		)

	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

func (r *AppointmentGormRepository) GetAppointmentForProvider(
	ctx context.Context,
	appointmentID uint,
	providerID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ? AND provider_id = ?", appointmentID, providerID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	providerID uint,
	date string,
	status string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Where("provider_id = ?", providerID)

	if date != "" {
		q = q.Where("date = ?", date)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var apts []models.Appointment
	if err := q.Order("start_time ASC").Find(&apts).Error; err != nil {
		return nil, err
	}

	return apts, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	providerID uint,
	date string,
) ([]models.Appointment, error) {

	var apts []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "date", "slot_time", "status").
		Where("provider_id = ? AND date = ?", providerID, date).
		Order("start_time ASC").
		Find(&apts).Error; err != nil {
		return nil, err
	}

	return apts, nil
}

// --------------------------------------------------
// Weekly template
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPersistedWeek(
	ctx context.Context,
	providerID uint,
) ([]availability.PersistedDay, error) {

	var rows []models.TemplateSlot
	if err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("day ASC, position ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	byDay := make(map[string][]string)
	for _, row := range rows {
		byDay[row.Day] = append(byDay[row.Day], row.Time)
	}

	week := make([]availability.PersistedDay, 0, len(byDay))
	for _, day := range availability.DayOrder {
		if slots, ok := byDay[day]; ok {
			week = append(week, availability.PersistedDay{Day: day, Slots: slots})
		}
	}

	return week, nil
}

func (r *AppointmentGormRepository) ReplaceWeeklyTemplate(
	ctx context.Context,
	providerID uint,
	slots []models.TemplateSlot,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("provider_id = ?", providerID).
			Delete(&models.TemplateSlot{}).Error; err != nil {
			return err
		}

		if len(slots) == 0 {
			return nil
		}

		return tx.Create(&slots).Error
	})
}

// --------------------------------------------------
// Date overrides
// --------------------------------------------------

func (r *AppointmentGormRepository) ListOverridesForDate(
	ctx context.Context,
	providerID uint,
	date string,
) ([]models.DateOverride, error) {

	var overrides []models.DateOverride
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND date = ?", providerID, date).
		Order("position ASC").
		Find(&overrides).Error; err != nil {
		return nil, err
	}

	return overrides, nil
}

func (r *AppointmentGormRepository) ReplaceOverridesForDate(
	ctx context.Context,
	providerID uint,
	date string,
	overrides []models.DateOverride,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("provider_id = ? AND date = ?", providerID, date).
			Delete(&models.DateOverride{}).Error; err != nil {
			return err
		}

		if len(overrides) == 0 {
			return nil
		}

		return tx.Create(&overrides).Error
	})
}

// --------------------------------------------------
// Blocked dates
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBlockedDates(
	ctx context.Context,
	providerID uint,
) ([]string, error) {

	var dates []string
	if err := r.db.WithContext(ctx).
		Model(&models.BlockedDate{}).
		Where("provider_id = ?", providerID).
		Order("date ASC").
		Pluck("date", &dates).Error; err != nil {
		return nil, err
	}

	return dates, nil
}

func (r *AppointmentGormRepository) IsDateBlocked(
	ctx context.Context,
	providerID uint,
	date string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BlockedDate{}).
		Where("provider_id = ? AND date = ?", providerID, date).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
