package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gramseva/gramseva-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeBusinessRepo struct {
	businesses map[string]*models.Business
}

func newFakeBusinessRepo(businesses ...*models.Business) *fakeBusinessRepo {
	repo := &fakeBusinessRepo{businesses: make(map[string]*models.Business)}
	for _, b := range businesses {
		copied := *b
		repo.businesses[b.ID.Hex()] = &copied
	}
	return repo
}

func (r *fakeBusinessRepo) InsertBusiness(_ context.Context, business *models.Business) error {
	if business.ID.IsZero() {
		business.ID = primitive.NewObjectID()
	}
	copied := *business
	r.businesses[business.ID.Hex()] = &copied
	return nil
}

func (r *fakeBusinessRepo) FindBusinessByID(_ context.Context, id string) (*models.Business, error) {
	business, ok := r.businesses[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *business
	return &copied, nil
}

func (r *fakeBusinessRepo) UpdateBusinessFields(_ context.Context, id string, fields map[string]any) (*models.Business, error) {
	business, ok := r.businesses[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	updated := *business
	for key, value := range fields {
		switch key {
		case "name":
			updated.Name = value.(string)
		case "description":
			updated.Description = value.(string)
		case "sector":
			updated.Sector = value.(string)
		case "funding_goal":
			updated.FundingGoal = value.(float64)
		case "latitude":
			updated.Latitude = value.(float64)
		case "longitude":
			updated.Longitude = value.(float64)
		case "updated_at":
			updated.UpdatedAt = value.(time.Time)
		}
	}
	r.businesses[id] = &updated
	copied := updated
	return &copied, nil
}

func (r *fakeBusinessRepo) DeleteBusiness(_ context.Context, id string) error {
	if _, ok := r.businesses[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.businesses, id)
	return nil
}

func (r *fakeBusinessRepo) ListBusinesses(_ context.Context, filter models.BusinessFilter) ([]models.Business, int64, error) {
	var matched []models.Business
	for _, business := range r.businesses {
		if filter.Sector != "" && business.Sector != filter.Sector {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(business.Name), needle) &&
				!strings.Contains(strings.ToLower(business.Description), needle) {
				continue
			}
		}
		matched = append(matched, *business)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return []models.Business{}, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func testBusiness(name, sector string, owner *models.User, created time.Time) *models.Business {
	return &models.Business{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: name + " description",
		Sector:      sector,
		FundingGoal: 50000,
		OwnerID:     owner.ID,
		CreatedAt:   created,
	}
}

func TestCreateBusinessSetsOwner(t *testing.T) {
	owner := testUser("amit", "amit@x.com", "111", models.RoleVillager, time.Now())
	repo := newFakeBusinessRepo()
	svc := NewBusinessService(repo)

	created, err := svc.Create(context.Background(), &models.Business{
		Name:        "Village Dairy",
		Description: "Daily milk collection and supply",
		Sector:      "agriculture",
		FundingGoal: 200000,
	}, owner)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if created.OwnerID != owner.ID {
		t.Errorf("ownerId = %v, want %v", created.OwnerID, owner.ID)
	}
	if created.ID.IsZero() || created.CreatedAt.IsZero() {
		t.Error("id or createdAt not set")
	}
	if !created.UpdatedAt.IsZero() {
		t.Error("fresh business carries an update timestamp")
	}
}

func TestCreateBusinessValidatesInput(t *testing.T) {
	owner := testUser("amit", "amit@x.com", "111", models.RoleVillager, time.Now())
	svc := NewBusinessService(newFakeBusinessRepo())

	cases := []struct {
		name     string
		business models.Business
	}{
		{"missing name", models.Business{Description: "d", Sector: "retail", FundingGoal: 100}},
		{"unknown sector", models.Business{Name: "n", Description: "d", Sector: "piracy", FundingGoal: 100}},
		{"zero funding goal", models.Business{Name: "n", Description: "d", Sector: "retail"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.business
			_, err := svc.Create(context.Background(), &b, owner)
			var invalid *models.ValidationError
			if !errors.As(err, &invalid) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpdateBusinessPermissions(t *testing.T) {
	owner := testUser("amit", "amit@x.com", "111", models.RoleVillager, time.Now())
	stranger := testUser("bina", "bina@x.com", "222", models.RoleVillager, time.Now())
	admin := testUser("admin1", "admin@x.com", "999", models.RoleAdmin, time.Now())
	business := testBusiness("Village Dairy", "agriculture", owner, time.Now())

	svc := NewBusinessService(newFakeBusinessRepo(business))

	_, err := svc.Update(context.Background(), business.ID.Hex(), models.BusinessUpdate{Name: "hijacked"}, stranger)
	if !errors.Is(err, models.ErrForbidden) {
		t.Errorf("stranger update: expected forbidden, got %v", err)
	}

	updated, err := svc.Update(context.Background(), business.ID.Hex(), models.BusinessUpdate{Name: "Village Dairy Co-op"}, owner)
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Name != "Village Dairy Co-op" || updated.UpdatedAt.IsZero() {
		t.Errorf("owner update result: %+v", updated)
	}

	goal := 300000.0
	updated, err = svc.Update(context.Background(), business.ID.Hex(), models.BusinessUpdate{FundingGoal: &goal}, admin)
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if updated.FundingGoal != goal {
		t.Errorf("fundingGoal = %v, want %v", updated.FundingGoal, goal)
	}
}

func TestUpdateBusinessRejectsBadValues(t *testing.T) {
	owner := testUser("amit", "amit@x.com", "111", models.RoleVillager, time.Now())
	business := testBusiness("Village Dairy", "agriculture", owner, time.Now())
	svc := NewBusinessService(newFakeBusinessRepo(business))

	_, err := svc.Update(context.Background(), business.ID.Hex(), models.BusinessUpdate{Sector: "piracy"}, owner)
	var invalid *models.ValidationError
	if !errors.As(err, &invalid) {
		t.Errorf("bad sector: expected validation error, got %v", err)
	}

	negative := -5.0
	_, err = svc.Update(context.Background(), business.ID.Hex(), models.BusinessUpdate{FundingGoal: &negative}, owner)
	if !errors.As(err, &invalid) {
		t.Errorf("negative goal: expected validation error, got %v", err)
	}
}

func TestDeleteBusinessPermissions(t *testing.T) {
	owner := testUser("amit", "amit@x.com", "111", models.RoleVillager, time.Now())
	stranger := testUser("bina", "bina@x.com", "222", models.RoleVillager, time.Now())
	business := testBusiness("Village Dairy", "agriculture", owner, time.Now())
	repo := newFakeBusinessRepo(business)
	svc := NewBusinessService(repo)

	if err := svc.Delete(context.Background(), business.ID.Hex(), stranger); !errors.Is(err, models.ErrForbidden) {
		t.Errorf("stranger delete: expected forbidden, got %v", err)
	}

	if err := svc.Delete(context.Background(), business.ID.Hex(), owner); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := repo.FindBusinessByID(context.Background(), business.ID.Hex()); !errors.Is(err, models.ErrNotFound) {
		t.Error("business still present after delete")
	}
}

func TestListBusinessesFilters(t *testing.T) {
	owner := testUser("amit", "amit@x.com", "111", models.RoleVillager, time.Now())
	now := time.Now()
	svc := NewBusinessService(newFakeBusinessRepo(
		testBusiness("Village Dairy", "agriculture", owner, now),
		testBusiness("Solar Pumps", "energy", owner, now.Add(time.Minute)),
		testBusiness("Seed Supply", "agriculture", owner, now.Add(2*time.Minute)),
	))

	farm, p, err := svc.List(context.Background(), models.BusinessFilter{Sector: "agriculture", Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(farm) != 2 || p.TotalBusinesses != 2 {
		t.Errorf("sector filter returned %d businesses", len(farm))
	}
	if farm[0].Name != "Seed Supply" {
		t.Errorf("expected newest first, got %q", farm[0].Name)
	}

	found, _, _ := svc.List(context.Background(), models.BusinessFilter{Search: "solar", Page: 1, Limit: 10})
	if len(found) != 1 || found[0].Name != "Solar Pumps" {
		t.Errorf("search returned %+v", found)
	}
}
