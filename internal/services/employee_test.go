package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"employee-system/internal/dto"
	"employee-system/internal/entities"
	apperrors "employee-system/pkg/errors"
	"employee-system/pkg/types"
)

var (
	adminCaller = types.Caller{ID: 1, Role: types.RoleAdmin}
	userCaller  = types.Caller{ID: 2, Role: types.RoleUser, OfficeID: 2}
)

func newEmployeeServiceForTest(employees *fakeEmployeeRepository, offices *fakeOfficeRepository, cache *fakeCacheRepository) EmployeeServiceInterface {
	return NewEmployeeService(employees, offices, cache, zap.NewNop())
}

func seedOffice(id uint64) entities.Office {
	return entities.Office{ID: id, Name: "Office", Location: "Dushanbe", CreatedBy: 1}
}

func seedEmployee(id, officeID uint64) entities.Employee {
	return entities.Employee{
		ID:                 id,
		Name:               "Alice",
		OfficeID:           officeID,
		IsRegisteredOnIGOT: true,
		CoursesEnrolled:    4,
		CoursesCompleted:   2,
		ReportDate:         time.Now(),
		CreatedBy:          1,
	}
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	httpErr, ok := err.(*apperrors.HttpError)
	require.True(t, ok, "expected *HttpError, got %T: %v", err, err)
	return httpErr.Code
}

func TestCreateEmployeeForcesZeroCountsWhenNotRegistered(t *testing.T) {
	employees := newFakeEmployeeRepository()
	offices := newFakeOfficeRepository(seedOffice(2))

	svc := newEmployeeServiceForTest(employees, offices, newFakeCacheRepository())

	created, err := svc.CreateEmployee(context.Background(), adminCaller, dto.CreateEmployeeDTO{
		Name:               "Bob",
		OfficeID:           2,
		IsRegisteredOnIGOT: false,
		CoursesEnrolled:    7,
		CoursesCompleted:   5,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created.CoursesEnrolled)
	assert.Equal(t, 0, created.CoursesCompleted)
	assert.False(t, created.IsRegisteredOnIGOT)
}

func TestCreateEmployeeOutsideOwnOfficeForbidden(t *testing.T) {
	svc := newEmployeeServiceForTest(newFakeEmployeeRepository(), newFakeOfficeRepository(seedOffice(3)), newFakeCacheRepository())

	_, err := svc.CreateEmployee(context.Background(), userCaller, dto.CreateEmployeeDTO{
		Name: "Bob", OfficeID: 3, IsRegisteredOnIGOT: false,
	})
	require.Error(t, err)
	assert.Equal(t, 403, httpCode(t, err))
}

func TestCreateEmployeeUnknownOffice(t *testing.T) {
	svc := newEmployeeServiceForTest(newFakeEmployeeRepository(), newFakeOfficeRepository(), newFakeCacheRepository())

	_, err := svc.CreateEmployee(context.Background(), adminCaller, dto.CreateEmployeeDTO{
		Name: "Bob", OfficeID: 99,
	})
	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err))
	assert.Equal(t, "Office not found", err.Error())
}

func TestCreateEmployeeInvalidReportDate(t *testing.T) {
	svc := newEmployeeServiceForTest(newFakeEmployeeRepository(), newFakeOfficeRepository(seedOffice(2)), newFakeCacheRepository())

	_, err := svc.CreateEmployee(context.Background(), adminCaller, dto.CreateEmployeeDTO{
		Name: "Bob", OfficeID: 2, ReportDate: "24-08-2026",
	})
	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
}

func TestUpdateEmployeeFrozenRejectedForAdmin(t *testing.T) {
	frozen := seedEmployee(10, 2)
	frozen.IsFrozen = true
	employees := newFakeEmployeeRepository(frozen)

	svc := newEmployeeServiceForTest(employees, newFakeOfficeRepository(seedOffice(2)), newFakeCacheRepository())

	name := "Renamed"
	_, err := svc.UpdateEmployee(context.Background(), adminCaller, 10, dto.UpdateEmployeeDTO{Name: &name})
	require.Error(t, err)
	assert.Equal(t, 403, httpCode(t, err))
	assert.Equal(t, "This record is frozen and cannot be modified", err.Error())
}

func TestUpdateEmployeeCrossOfficeForbidden(t *testing.T) {
	employees := newFakeEmployeeRepository(seedEmployee(10, 5))

	svc := newEmployeeServiceForTest(employees, newFakeOfficeRepository(seedOffice(5)), newFakeCacheRepository())

	name := "Renamed"
	_, err := svc.UpdateEmployee(context.Background(), userCaller, 10, dto.UpdateEmployeeDTO{Name: &name})
	require.Error(t, err)
	assert.Equal(t, 403, httpCode(t, err))
}

func TestUpdateEmployeeRejectsCompletedOverEnrolled(t *testing.T) {
	employees := newFakeEmployeeRepository(seedEmployee(10, 2))

	svc := newEmployeeServiceForTest(employees, newFakeOfficeRepository(seedOffice(2)), newFakeCacheRepository())

	completed := 9
	_, err := svc.UpdateEmployee(context.Background(), adminCaller, 10, dto.UpdateEmployeeDTO{CoursesCompleted: &completed})
	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
	assert.Contains(t, err.Error(), "coursesCompleted can not exceed coursesEnrolled")
}

func TestUpdateEmployeeMergesPointerFields(t *testing.T) {
	employees := newFakeEmployeeRepository(seedEmployee(10, 2))

	svc := newEmployeeServiceForTest(employees, newFakeOfficeRepository(seedOffice(2)), newFakeCacheRepository())

	enrolled := 10
	updated, err := svc.UpdateEmployee(context.Background(), userCaller, 10, dto.UpdateEmployeeDTO{CoursesEnrolled: &enrolled})
	require.NoError(t, err)
	assert.Equal(t, 10, updated.CoursesEnrolled)
	// Untouched fields keep their previous values.
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, 2, updated.CoursesCompleted)
}

// vanishingEmployeeRepository simulates the row disappearing between the find
// and the write.
type vanishingEmployeeRepository struct {
	*fakeEmployeeRepository
}

func (r *vanishingEmployeeRepository) UpdateEmployee(context.Context, entities.Employee) error {
	return apperrors.ErrRecordNotFound
}

func TestUpdateEmployeeRowVanishedIsNotFound(t *testing.T) {
	employees := &vanishingEmployeeRepository{newFakeEmployeeRepository(seedEmployee(10, 2))}

	svc := NewEmployeeService(employees, newFakeOfficeRepository(seedOffice(2)), newFakeCacheRepository(), zap.NewNop())

	name := "Renamed"
	_, err := svc.UpdateEmployee(context.Background(), adminCaller, 10, dto.UpdateEmployeeDTO{Name: &name})
	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err))
	assert.Equal(t, "Employee not found", err.Error())
}

func TestDeleteEmployeeInvalidatesDashboardCache(t *testing.T) {
	employees := newFakeEmployeeRepository(seedEmployee(10, 2))
	cache := newFakeCacheRepository()

	svc := newEmployeeServiceForTest(employees, newFakeOfficeRepository(seedOffice(2)), cache)

	require.NoError(t, svc.DeleteEmployee(context.Background(), adminCaller, 10))
	assert.Contains(t, cache.deletedKeys, DashboardCacheKeyAll())
	assert.Contains(t, cache.deletedKeys, DashboardCacheKeyOffice(2))
}

func TestDeleteEmployeeFrozenRejected(t *testing.T) {
	frozen := seedEmployee(10, 2)
	frozen.IsFrozen = true
	employees := newFakeEmployeeRepository(frozen)

	svc := newEmployeeServiceForTest(employees, newFakeOfficeRepository(seedOffice(2)), newFakeCacheRepository())

	err := svc.DeleteEmployee(context.Background(), adminCaller, 10)
	require.Error(t, err)
	assert.Equal(t, 403, httpCode(t, err))
}

func TestGetEmployeesScopesNonAdmin(t *testing.T) {
	employees := newFakeEmployeeRepository(seedEmployee(1, 2), seedEmployee(2, 3))

	svc := newEmployeeServiceForTest(employees, newFakeOfficeRepository(), newFakeCacheRepository())

	listed, err := svc.GetEmployees(context.Background(), userCaller)
	require.NoError(t, err)
	require.NotNil(t, employees.lastScope)
	assert.Equal(t, uint64(2), *employees.lastScope)
	require.Len(t, listed, 1)
	assert.Equal(t, uint64(2), listed[0].OfficeID)

	_, err = svc.GetEmployees(context.Background(), adminCaller)
	require.NoError(t, err)
	assert.Nil(t, employees.lastScope)
}

func TestGetEmployeeReportCarriesFilter(t *testing.T) {
	employees := newFakeEmployeeRepository()

	svc := newEmployeeServiceForTest(employees, newFakeOfficeRepository(), newFakeCacheRepository())

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)
	_, err := svc.GetEmployeeReport(context.Background(), userCaller, &start, &end)
	require.NoError(t, err)

	require.NotNil(t, employees.lastFilter.OfficeID)
	assert.Equal(t, uint64(2), *employees.lastFilter.OfficeID)
	assert.Equal(t, start, *employees.lastFilter.StartDate)
	assert.Equal(t, end, *employees.lastFilter.EndDate)
}

func TestFindEmployeeNotFoundAndForbidden(t *testing.T) {
	employees := newFakeEmployeeRepository(seedEmployee(10, 5))

	svc := newEmployeeServiceForTest(employees, newFakeOfficeRepository(), newFakeCacheRepository())

	_, err := svc.FindEmployee(context.Background(), adminCaller, 99)
	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err))

	_, err = svc.FindEmployee(context.Background(), userCaller, 10)
	require.Error(t, err)
	assert.Equal(t, 403, httpCode(t, err))
}

func TestSetFrozenRoundTrip(t *testing.T) {
	employees := newFakeEmployeeRepository(seedEmployee(10, 2))

	svc := newEmployeeServiceForTest(employees, newFakeOfficeRepository(), newFakeCacheRepository())

	frozen, err := svc.SetFrozen(context.Background(), adminCaller, 10, true)
	require.NoError(t, err)
	assert.True(t, frozen.IsFrozen)

	// Freezing an already frozen record stays a no-op success.
	frozen, err = svc.SetFrozen(context.Background(), adminCaller, 10, true)
	require.NoError(t, err)
	assert.True(t, frozen.IsFrozen)

	thawed, err := svc.SetFrozen(context.Background(), adminCaller, 10, false)
	require.NoError(t, err)
	assert.False(t, thawed.IsFrozen)
}
