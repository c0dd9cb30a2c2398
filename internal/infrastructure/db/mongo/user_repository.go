package mongo

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/singleflight"

	"github.com/healthclaim/portal-api/internal/core/domain"
)

const userCollection = "user"

// UserRepository stores portal accounts in the "user" collection. Email
// uniqueness is enforced by a unique index that is created before the first
// write, so concurrent registrations cannot both succeed.
type UserRepository struct {
	coll *mongo.Collection
	now  func() time.Time

	indexes    singleflight.Group
	indexReady atomic.Bool
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(userCollection), now: time.Now}
}

type mongoUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Name      string             `bson:"name"`
	Role      string             `bson:"role"`
	Profile   map[string]any     `bson:"profile"`
	IsActive  bool               `bson:"is_active"`
	LastLogin *time.Time         `bson:"last_login,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// EnsureIndexes creates the unique email index and the (email, role) lookup
// index. It is idempotent; once it succeeds later calls are free. Concurrent
// callers share one in-flight attempt instead of queueing behind each other.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	if r.indexReady.Load() {
		return nil
	}

	_, err, _ := r.indexes.Do("user_indexes", func() (any, error) {
		if r.indexReady.Load() {
			return nil, nil
		}
		_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("email_unique"),
			},
			{
				Keys:    bson.D{{Key: "email", Value: 1}, {Key: "role", Value: 1}, {Key: "is_active", Value: 1}},
				Options: options.Index().SetName("email_role_active"),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("create user indexes: %w", err)
		}
		r.indexReady.Store(true)
		return nil, nil
	})
	return err
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := r.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	doc := toMongoUser(user)
	doc.ID = primitive.NilObjectID

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert user: unexpected id type %T", res.InsertedID)
	}
	doc.ID = oid
	return fromMongoUser(doc), nil
}

func (r *UserRepository) FindByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	filter := bson.M{
		"email":     domain.NormalizeEmail(email),
		"role":      string(role),
		"is_active": true,
	}
	return r.findOne(ctx, filter)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// Save replaces the whole document and stamps UpdatedAt on user.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if err := r.EnsureIndexes(ctx); err != nil {
		return err
	}

	updatedAt := r.now().UTC()
	doc := toMongoUser(user)
	doc.ID = oid
	doc.UpdatedAt = updatedAt

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("save user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}

	user.UpdatedAt = updatedAt
	return nil
}

// DeleteAll removes every account. Only the seeder calls it.
func (r *UserRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("delete users: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return fromMongoUser(mu), nil
}

func toMongoUser(u *domain.User) mongoUser {
	profile := map[string]any(u.Profile)
	if profile == nil {
		profile = map[string]any{}
	}
	return mongoUser{
		Email:     domain.NormalizeEmail(u.Email),
		Password:  u.PasswordHash,
		Name:      u.Name,
		Role:      string(u.Role),
		Profile:   profile,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func fromMongoUser(mu mongoUser) *domain.User {
	var lastLogin *time.Time
	if mu.LastLogin != nil {
		t := mu.LastLogin.UTC()
		lastLogin = &t
	}
	return &domain.User{
		ID:           mu.ID.Hex(),
		Email:        mu.Email,
		PasswordHash: mu.Password,
		Name:         mu.Name,
		Role:         domain.Role(mu.Role),
		Profile:      domain.Profile(mu.Profile),
		IsActive:     mu.IsActive,
		LastLogin:    lastLogin,
		CreatedAt:    mu.CreatedAt.UTC(),
		UpdatedAt:    mu.UpdatedAt.UTC(),
	}
}
