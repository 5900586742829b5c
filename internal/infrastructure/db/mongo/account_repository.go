package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campuscompass/guidance-system/internal/core/domain"
	"github.com/campuscompass/guidance-system/internal/core/ports"
)

const accountCollection = "accounts"

// AccountRepository implements ports.AccountRepository on MongoDB.
type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(accountCollection)}
}

// accountDoc is the persisted shape of an account. Email is stored normalized
// to lower case; uniqueness is enforced by the index from EnsureIndexes.
type accountDoc struct {
	ID           primitive.ObjectID         `bson:"_id,omitempty"`
	Email        string                     `bson:"email"`
	PasswordHash string                     `bson:"password_hash"`
	Year         string                     `bson:"year"`
	Experience   string                     `bson:"coding_experience"`
	Languages    []string                   `bson:"languages"`
	LearningPath []domain.LearningPathEntry `bson:"learning_path"`
	Ratings      map[string]int             `bson:"ratings"`
	CreatedAt    time.Time                  `bson:"created_at"`
	UpdatedAt    time.Time                  `bson:"updated_at"`
}

func (d *accountDoc) toDomain() *domain.Account {
	account := &domain.Account{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Year:         domain.Year(d.Year),
		Experience:   domain.Experience(d.Experience),
		Languages:    d.Languages,
		LearningPath: d.LearningPath,
		Ratings:      d.Ratings,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
	if account.Languages == nil {
		account.Languages = []string{}
	}
	if account.LearningPath == nil {
		account.LearningPath = []domain.LearningPathEntry{}
	}
	if account.Ratings == nil {
		account.Ratings = map[string]int{}
	}
	return account
}

// Create inserts a new account document. A duplicate email surfaces as
// domain.ErrEmailTaken via the unique index.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := accountDoc{
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Year:         string(account.Year),
		Experience:   string(account.Experience),
		Languages:    account.Languages,
		LearningPath: account.LearningPath,
		Ratings:      account.Ratings,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *account
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accountDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	var doc accountDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by id: %w", err)
	}
	return doc.toDomain(), nil
}

// UpdateProfile applies scalar overwrites and learning-path prepends in a
// single FindOneAndUpdate, so concurrent updates to the same account never
// lose writes. New path entries go to the front via $push/$each/$position:0,
// preserving their submitted order ahead of the existing sequence.
func (r *AccountRepository) UpdateProfile(ctx context.Context, id string, update ports.ProfileUpdate) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Year != nil {
		set["year"] = string(*update.Year)
	}
	if update.Experience != nil {
		set["coding_experience"] = string(*update.Experience)
	}
	if update.Languages != nil {
		set["languages"] = update.Languages
	}

	mutation := bson.M{"$set": set}
	if len(update.PathEntries) > 0 {
		mutation["$push"] = bson.M{
			"learning_path": bson.M{
				"$each":     update.PathEntries,
				"$position": 0,
			},
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc accountDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, mutation, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return doc.toDomain(), nil
}

// SetRating upserts a single rating key with a field-level $set, so two
// concurrent ratings of different resources never clobber each other and a
// repeated rating of the same resource is last-write-wins.
func (r *AccountRepository) SetRating(ctx context.Context, id, resourceID string, rating int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"ratings." + resourceID: rating,
			"updated_at":            time.Now().UTC(),
		},
	})
	if err != nil {
		return fmt.Errorf("set rating: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index. Call once at startup.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
