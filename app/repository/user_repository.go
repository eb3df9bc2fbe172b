package repository

import (
	"context"
	"log"
	"time"

	"github.com/Bryanx275/trafeek-admin/app/models"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/env"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/query"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/trafeek"
)

// userRepository implements the UserRepository interface on top of the
// backend client and the query cache.
type userRepository struct {
	client *trafeek.Client
	store  *query.Store
	ttl    time.Duration
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(client *trafeek.Client, store *query.Store) UserRepository {
	return &userRepository{
		client: client,
		store:  store,
		ttl:    env.GetEnvDuration("QUERY_TTL_SECONDS", time.Second, 60*time.Second),
	}
}

// List returns accounts filtered server-side, cached per filter combination.
func (r *userRepository) List(ctx context.Context, token, search, role string) ([]models.User, error) {
	key := query.NewKey(NamespaceUsers, map[string]string{"search": search, "role": role})
	data, err := r.store.Fetch(ctx, key, r.ttl, func(ctx context.Context) (any, error) {
		return r.client.Users(ctx, token, search, role)
	})
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := query.Decode(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Find locates one account inside the unfiltered cached list.
func (r *userRepository) Find(ctx context.Context, token, userID string) (*models.User, error) {
	users, err := r.List(ctx, token, "", "")
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == userID {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

// Suspend blocks an account and invalidates the user and analytics slots.
func (r *userRepository) Suspend(ctx context.Context, token, userID, reason string) error {
	if err := r.client.SuspendUser(ctx, token, userID, reason); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Unsuspend lifts a suspension.
func (r *userRepository) Unsuspend(ctx context.Context, token, userID string) error {
	if err := r.client.UnsuspendUser(ctx, token, userID); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Delete removes an account permanently.
func (r *userRepository) Delete(ctx context.Context, token, userID string) error {
	if err := r.client.DeleteUser(ctx, token, userID); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// invalidate runs after a confirmed mutation. Account mutations move the
// aggregate counters too, so the analytics namespace goes with the users one.
func (r *userRepository) invalidate(ctx context.Context) {
	for _, namespace := range []string{NamespaceUsers, NamespaceAnalytics} {
		if _, err := r.store.InvalidateNamespace(ctx, namespace); err != nil {
			log.Printf("failed to invalidate %s cache: %v", namespace, err)
		}
	}
}
