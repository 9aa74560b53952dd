package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Adi-cmrec/lenslink/internal/core/domain"
	"github.com/Adi-cmrec/lenslink/internal/core/ports"
)

const profilesCollection = "photographer_profiles"

type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profilesCollection)}
}

type profileDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          primitive.ObjectID `bson:"user_id"`
	PhotographyType string             `bson:"photography_type"`
	City            string             `bson:"city"`
	ExperienceYears int                `bson:"experience_years"`
	Skills          []string           `bson:"skills"`
	WorkPhotos      []string           `bson:"work_photos"`
	ContactNumber   string             `bson:"contact_number"`
	Available       bool               `bson:"available"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (d profileDoc) toDomain() *domain.Profile {
	skills := d.Skills
	if skills == nil {
		skills = []string{}
	}
	photos := d.WorkPhotos
	if photos == nil {
		photos = []string{}
	}
	return &domain.Profile{
		ID:              d.ID.Hex(),
		UserID:          d.UserID.Hex(),
		PhotographyType: d.PhotographyType,
		City:            d.City,
		ExperienceYears: d.ExperienceYears,
		Skills:          skills,
		WorkPhotos:      photos,
		ContactNumber:   d.ContactNumber,
		Available:       d.Available,
		CreatedAt:       d.CreatedAt.UTC(),
		UpdatedAt:       d.UpdatedAt.UTC(),
	}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) (string, error) {
	userOID, err := primitive.ObjectIDFromHex(p.UserID)
	if err != nil {
		return "", fmt.Errorf("insert profile: bad user id %q: %w", p.UserID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := profileDoc{
		UserID:          userOID,
		PhotographyType: p.PhotographyType,
		City:            p.City,
		ExperienceYears: p.ExperienceYears,
		Skills:          p.Skills,
		WorkPhotos:      p.WorkPhotos,
		ContactNumber:   p.ContactNumber,
		Available:       p.Available,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrProfileExists
		}
		return "", fmt.Errorf("insert profile: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert profile: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc profileDoc
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userOID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile by user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidPhotographerID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc profileDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPhotographerNotFound
		}
		return nil, fmt.Errorf("find profile by id: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProfileRepository) Update(ctx context.Context, userID string, upd domain.ProfileUpdate) error {
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrProfileNotFound
	}

	set := updateDocument(upd)
	if len(set) == 0 {
		return nil
	}
	set["updated_at"] = time.Now().UTC()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"user_id": userOID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// updateDocument builds the $set body from the fields the caller actually
// supplied. Nil pointers are left out so untouched fields keep their stored
// values.
func updateDocument(upd domain.ProfileUpdate) bson.M {
	set := bson.M{}
	if upd.PhotographyType != nil {
		set["photography_type"] = *upd.PhotographyType
	}
	if upd.City != nil {
		set["city"] = *upd.City
	}
	if upd.ExperienceYears != nil {
		set["experience_years"] = *upd.ExperienceYears
	}
	if upd.Skills != nil {
		set["skills"] = *upd.Skills
	}
	if upd.ContactNumber != nil {
		set["contact_number"] = *upd.ContactNumber
	}
	if upd.Available != nil {
		set["available"] = *upd.Available
	}
	return set
}

// AppendWorkPhotos pushes urls onto work_photos only when the current array is
// short enough to fit them: the element at index limit-len(urls) must not
// exist. A concurrent upload that would overshoot matches nothing and fails
// with ErrPhotoLimitExceeded.
func (r *ProfileRepository) AppendWorkPhotos(ctx context.Context, userID string, urls []string, limit int) error {
	if len(urls) == 0 {
		return nil
	}
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrProfileNotFound
	}
	if len(urls) > limit {
		return domain.ErrPhotoLimitExceeded
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"user_id": userOID,
		"work_photos." + strconv.Itoa(limit-len(urls)): bson.M{"$exists": false},
	}
	update := bson.M{
		"$push": bson.M{"work_photos": bson.M{"$each": urls}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("append work photos: %w", err)
	}
	if res.MatchedCount == 0 {
		// Either the profile vanished or the ceiling was hit concurrently.
		if _, findErr := r.FindByUserID(ctx, userID); findErr != nil {
			return findErr
		}
		return domain.ErrPhotoLimitExceeded
	}
	return nil
}

func (r *ProfileRepository) List(ctx context.Context, filter ports.ProfileFilter) ([]domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, listFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Profile
	for cur.Next(ctx) {
		var doc profileDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
		out = append(out, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return out, nil
}

// listFilter builds the case-insensitive substring query. Filter values are
// treated as literals, not user-supplied regex.
func listFilter(f ports.ProfileFilter) bson.M {
	query := bson.M{}
	if f.City != "" {
		query["city"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.City), Options: "i"}
	}
	if f.PhotographyType != "" {
		query["photography_type"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.PhotographyType), Options: "i"}
	}
	return query
}

// EnsureIndexes creates the unique user_id index enforcing one profile per
// user at the storage layer.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "photography_type", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
