package subscription

import (
	"context"
	"sync"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu    sync.Mutex
	added []*Subscription
}

func (r *fakeRepo) Add(ctx context.Context, s *Subscription) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *s
	copied.ID = "generated-id"
	r.added = append(r.added, &copied)
	return copied.ID, nil
}

func (r *fakeRepo) ListAll(ctx context.Context) ([]Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Subscription, 0, len(r.added))
	for _, s := range r.added {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeRepo) Count(ctx context.Context) (int, error) {
	return len(r.added), nil
}

func TestCreateFull(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	id, err := svc.CreateFull(context.Background(), CreateRequest{
		FirstName: "June",
		LastName:  "Okafor",
		City:      "Chicago",
		Email:     "june@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "generated-id", id)

	require.Len(t, repo.added, 1)
	saved := repo.added[0]
	assert.Equal(t, TypeFull, saved.Type)
	assert.Equal(t, "june@example.com", saved.Email)
	assert.NotEmpty(t, saved.CreatedAt)
}

func TestCreateFull_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.CreateFull(context.Background(), CreateRequest{
		FirstName: "June",
		Email:     "not-an-email",
	})
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "lastName")
	assert.Contains(t, errs, "email")
}

func TestCreateNewsletter(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.CreateNewsletter(context.Background(), NewsletterRequest{Email: "june@example.com"})
	require.NoError(t, err)

	require.Len(t, repo.added, 1)
	saved := repo.added[0]
	assert.Equal(t, TypeNewsletter, saved.Type)
	assert.Empty(t, saved.FirstName)
}

func TestCreateNewsletter_RequiresEmail(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.CreateNewsletter(context.Background(), NewsletterRequest{})
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "email")
}

func TestExportToExcel(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.CreateFull(context.Background(), CreateRequest{
		FirstName: "June", LastName: "Okafor", Email: "june@example.com",
	})
	require.NoError(t, err)
	_, err = svc.CreateNewsletter(context.Background(), NewsletterRequest{Email: "leo@example.com"})
	require.NoError(t, err)

	f, err := svc.ExportToExcel(context.Background())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Subscribers")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two subscribers")

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Email", rows[0][4])
	assert.Equal(t, TypeFull, rows[1][1])
	assert.Equal(t, "june@example.com", rows[1][4])
	assert.Equal(t, TypeNewsletter, rows[2][1])
}
