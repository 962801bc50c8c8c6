package employee

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/domain/employee"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	employees []employee.Employee
	nextID    int64

	// pinCollisions fails that many Create calls with ErrPINExists before
	// letting one through.
	pinCollisions int
}

func (f *fakeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if f.pinCollisions > 0 {
		f.pinCollisions--
		return employee.Employee{}, employee.ErrPINExists
	}
	for _, existing := range f.employees {
		if existing.Code == e.Code {
			return employee.Employee{}, employee.ErrCodeExists
		}
		if existing.PIN == e.PIN {
			return employee.Employee{}, employee.ErrPINExists
		}
	}
	f.nextID++
	e.ID = f.nextID
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Code == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeRepo) GetByPIN(ctx context.Context, pin string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.PIN == pin {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeRepo) Search(ctx context.Context, query string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.Name == query || e.Code == query {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.employees)), nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	for i, e := range f.employees {
		if e.ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func TestCreate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewEmployeeService(repo)

	created, err := svc.Create(context.Background(), employee.CreateRequest{
		Name:     "Asha",
		Code:     "EMP001",
		Password: "hunter2",
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha", created.Name)
	assert.Equal(t, "EMP001", created.Code)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}$`), created.PIN)

	// Password is stored as a bcrypt hash, never plaintext.
	stored := repo.employees[0]
	assert.NotEqual(t, "hunter2", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")))
}

func TestCreate_Validation(t *testing.T) {
	svc := NewEmployeeService(&fakeRepo{})

	_, err := svc.Create(context.Background(), employee.CreateRequest{})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	details := verrs.ToMap()
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "emp_code")
	assert.Contains(t, details, "password")
}

func TestCreate_DuplicateCode(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewEmployeeService(repo)

	req := employee.CreateRequest{Name: "Asha", Code: "EMP001", Password: "x"}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrCodeExists)
}

func TestCreate_RetriesOnPINCollision(t *testing.T) {
	repo := &fakeRepo{pinCollisions: 2}
	svc := NewEmployeeService(repo)

	created, err := svc.Create(context.Background(), employee.CreateRequest{Name: "A", Code: "C1", Password: "x"})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}$`), created.PIN)
}

func TestCreate_GivesUpAfterTooManyCollisions(t *testing.T) {
	repo := &fakeRepo{pinCollisions: pinAttempts}
	svc := NewEmployeeService(repo)

	_, err := svc.Create(context.Background(), employee.CreateRequest{Name: "A", Code: "C1", Password: "x"})
	assert.ErrorIs(t, err, employee.ErrPINExists)
}

func TestGetAndDelete(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewEmployeeService(repo)

	created, err := svc.Create(context.Background(), employee.CreateRequest{Name: "Asha", Code: "EMP001", Password: "x"})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestList(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewEmployeeService(repo)

	for _, code := range []string{"EMP001", "EMP002"} {
		_, err := svc.Create(context.Background(), employee.CreateRequest{Name: "N " + code, Code: code, Password: "x"})
		require.NoError(t, err)
	}

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	total, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestGetByPIN(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewEmployeeService(repo)

	created, err := svc.Create(context.Background(), employee.CreateRequest{Name: "Asha", Code: "EMP001", Password: "x"})
	require.NoError(t, err)
	require.NotEmpty(t, created.PIN)

	got, err := svc.GetByPIN(context.Background(), created.PIN)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "EMP001", got.Code)

	missing := "9999"
	if created.PIN == missing {
		missing = "9998"
	}
	_, err = svc.GetByPIN(context.Background(), missing)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetByCode_OmitsPIN(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewEmployeeService(repo)

	_, err := svc.Create(context.Background(), employee.CreateRequest{Name: "Asha", Code: "EMP001", Password: "x"})
	require.NoError(t, err)

	got, err := svc.GetByCode(context.Background(), "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)
	assert.Empty(t, got.PIN)
}
