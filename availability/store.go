package availability

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/glowdesk/glowdesk-api/models"
)

// GormStore implements Store on top of the application database
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetService(businessID, serviceID uint) (*ServiceInfo, []uint, error) {
	var service models.Service
	err := s.db.Preload("Staff").
		Where("business_id = ?", businessID).
		First(&service, serviceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrServiceNotFound
		}
		return nil, nil, err
	}

	staffIDs := make([]uint, 0, len(service.Staff))
	for _, staff := range service.Staff {
		staffIDs = append(staffIDs, staff.ID)
	}

	return &ServiceInfo{
		ID:              service.ID,
		BusinessID:      service.BusinessID,
		Name:            service.Name,
		DurationMinutes: service.DurationMinutes,
	}, staffIDs, nil
}

func (s *GormStore) GetBusiness(businessID uint) (*BusinessInfo, error) {
	var business models.Business
	if err := s.db.First(&business, businessID).Error; err != nil {
		return nil, err
	}
	return &BusinessInfo{ID: business.ID, Name: business.Name}, nil
}

func (s *GormStore) GetActiveStaff(businessID uint, ids []uint) ([]StaffInfo, error) {
	query := s.db.Model(&models.StaffMember{}).
		Where("business_id = ? AND active = ?", businessID, true).
		Order("id asc")
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}

	var staff []models.StaffMember
	if err := query.Find(&staff).Error; err != nil {
		return nil, err
	}

	result := make([]StaffInfo, 0, len(staff))
	for _, member := range staff {
		result = append(result, StaffInfo{ID: member.ID, Name: member.Name})
	}
	return result, nil
}

func (s *GormStore) GetBookings(businessID uint, dayStart, dayEnd time.Time) ([]BookingInfo, error) {
	var bookings []models.Booking
	err := s.db.
		Where("business_id = ?", businessID).
		Where("status NOT IN ?", models.InactiveStatuses).
		Where("start_time BETWEEN ? AND ?", dayStart, dayEnd).
		Order("start_time asc").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	result := make([]BookingInfo, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, BookingInfo{
			ID:        booking.ID,
			StaffID:   booking.StaffID,
			StartTime: booking.StartTime,
			EndTime:   booking.EndTime,
		})
	}
	return result, nil
}
