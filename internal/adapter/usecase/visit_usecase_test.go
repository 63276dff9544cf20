package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
	"agency-desk/internal/core/port/mocks"
)

func newVisitUseCase(t *testing.T) (*VisitUseCase, *mocks.MockVisitRepository, *mocks.MockCampaignRepository) {
	visits := mocks.NewMockVisitRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	uc := NewVisitUseCase(visits, campaigns, discardLogger())
	uc.now = func() time.Time { return fixedNow }
	return uc, visits, campaigns
}

func TestScheduleVisitForSelf(t *testing.T) {
	uc, visits, campaigns := newVisitUseCase(t)
	employeeID, retailerID := uuid.New(), uuid.New()
	c := &domain.Campaign{ID: uuid.New()}
	actor := domain.Actor{Role: domain.RoleEmployee, ProfileID: employeeID}
	when := fixedNow.AddDate(0, 0, 3)

	campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	campaigns.EXPECT().IsLinked(mock.Anything, c.ID, employeeID, retailerID).Return(true, nil)
	visits.EXPECT().CreateVisit(mock.Anything, mock.AnythingOfType("*domain.VisitSchedule")).Return(nil)

	v, err := uc.ScheduleVisit(context.Background(), actor, port.VisitInput{
		CampaignID: c.ID,
		RetailerID: retailerID,
		VisitDate:  when,
		Notes:      " bring posters ",
	})
	require.NoError(t, err)
	require.Equal(t, employeeID, v.EmployeeID)
	require.Equal(t, domain.VisitScheduled, v.Status)
	require.Equal(t, "bring posters", v.Notes)
}

func TestScheduleVisitRules(t *testing.T) {
	uc, _, campaigns := newVisitUseCase(t)
	employeeID := uuid.New()
	c := &domain.Campaign{ID: uuid.New()}
	actor := domain.Actor{Role: domain.RoleEmployee, ProfileID: employeeID}

	_, err := uc.ScheduleVisit(context.Background(), actor, port.VisitInput{EmployeeID: uuid.New(), VisitDate: fixedNow})
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.ScheduleVisit(context.Background(), domain.Actor{Role: domain.RoleRetailer}, port.VisitInput{})
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.ScheduleVisit(context.Background(), actor, port.VisitInput{CampaignID: c.ID})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	retailerID := uuid.New()
	campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	campaigns.EXPECT().IsLinked(mock.Anything, c.ID, employeeID, retailerID).Return(false, nil)
	_, err = uc.ScheduleVisit(context.Background(), actor, port.VisitInput{CampaignID: c.ID, RetailerID: retailerID, VisitDate: fixedNow})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListVisitsEmployeeSeesOwn(t *testing.T) {
	uc, visits, _ := newVisitUseCase(t)
	employeeID := uuid.New()
	status := domain.VisitScheduled

	visits.EXPECT().
		ListVisits(mock.Anything, port.VisitFilter{EmployeeID: &employeeID, Status: &status}).
		Return([]domain.VisitSchedule{{ID: uuid.New()}}, nil)

	other := uuid.New()
	list, err := uc.ListVisits(context.Background(),
		domain.Actor{Role: domain.RoleEmployee, ProfileID: employeeID},
		port.VisitFilter{EmployeeID: &other, Status: &status})
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = uc.ListVisits(context.Background(), domain.Actor{Role: domain.RoleClient}, port.VisitFilter{})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateVisitStatus(t *testing.T) {
	uc, visits, _ := newVisitUseCase(t)
	employeeID := uuid.New()
	actor := domain.Actor{Role: domain.RoleEmployee, ProfileID: employeeID}

	today := &domain.VisitSchedule{ID: uuid.New(), EmployeeID: employeeID, VisitDate: fixedNow, Status: domain.VisitScheduled}
	future := &domain.VisitSchedule{ID: uuid.New(), EmployeeID: employeeID, VisitDate: fixedNow.AddDate(0, 0, 2), Status: domain.VisitScheduled}
	foreign := &domain.VisitSchedule{ID: uuid.New(), EmployeeID: uuid.New(), Status: domain.VisitScheduled}

	visits.EXPECT().GetVisit(mock.Anything, today.ID).Return(today, nil)
	visits.EXPECT().GetVisit(mock.Anything, future.ID).Return(future, nil)
	visits.EXPECT().GetVisit(mock.Anything, foreign.ID).Return(foreign, nil)
	visits.EXPECT().UpdateVisit(mock.Anything, today).Return(nil)

	v, err := uc.UpdateVisitStatus(context.Background(), actor, today.ID, domain.VisitCompleted, "done")
	require.NoError(t, err)
	require.Equal(t, domain.VisitCompleted, v.Status)
	require.Equal(t, "done", v.Notes)

	_, err = uc.UpdateVisitStatus(context.Background(), actor, future.ID, domain.VisitCompleted, "")
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = uc.UpdateVisitStatus(context.Background(), actor, foreign.ID, domain.VisitMissed, "")
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteVisit(t *testing.T) {
	uc, visits, _ := newVisitUseCase(t)
	admin := domain.Actor{Role: domain.RoleAdmin}
	scheduled := &domain.VisitSchedule{ID: uuid.New(), Status: domain.VisitScheduled}
	missed := &domain.VisitSchedule{ID: uuid.New(), Status: domain.VisitMissed}

	visits.EXPECT().GetVisit(mock.Anything, scheduled.ID).Return(scheduled, nil)
	visits.EXPECT().GetVisit(mock.Anything, missed.ID).Return(missed, nil)
	visits.EXPECT().GetVisit(mock.Anything, mock.Anything).Return(nil, nil)
	visits.EXPECT().DeleteVisit(mock.Anything, scheduled.ID).Return(nil)

	require.NoError(t, uc.DeleteVisit(context.Background(), admin, scheduled.ID))
	require.ErrorIs(t, uc.DeleteVisit(context.Background(), admin, missed.ID), domain.ErrInvalidTransition)
	require.ErrorIs(t, uc.DeleteVisit(context.Background(), admin, uuid.New()), domain.ErrNotFound)
}
