package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	EnquiryDbName  = "evermore"
	EnquiryColName = "enquiries"
)

// Enquiry is a free-text message from the booking or contact form,
// optionally tied to a venue the visitor was looking at.
type Enquiry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    uuid.UUID          `bson:"user_id" json:"user_id" validate:"required"`
	VenueID   string             `bson:"venue_id,omitempty" json:"venue_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type EnquiryRepo interface {
	SubmitEnquiry(ctx context.Context, enquiry *Enquiry) (*Enquiry, error)
	ListEnquiriesByUser(ctx context.Context, userId uuid.UUID) ([]*Enquiry, error)
	ListEnquiries(ctx context.Context) ([]*Enquiry, error)
}

func (e *Enquiry) BeforeCreate() error {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	return nil
}

func (mdb *MongodbRepo) SubmitEnquiry(ctx context.Context, enquiry *Enquiry) (*Enquiry, error) {
	col, err := mdb.GetCollection(ctx, EnquiryDbName, EnquiryColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if err := enquiry.BeforeCreate(); err != nil {
		return nil, err
	}
	enquiry.CreatedAt = time.Now()

	if _, err := col.InsertOne(ctx, enquiry); err != nil {
		return nil, fmt.Errorf("error inserting enquiry: %v", err)
	}

	return enquiry, nil
}

func (mdb *MongodbRepo) ListEnquiriesByUser(ctx context.Context, userId uuid.UUID) ([]*Enquiry, error) {
	return mdb.findEnquiries(ctx, bson.M{"user_id": userId})
}

func (mdb *MongodbRepo) ListEnquiries(ctx context.Context) ([]*Enquiry, error) {
	return mdb.findEnquiries(ctx, bson.M{})
}

func (mdb *MongodbRepo) findEnquiries(ctx context.Context, filter bson.M) ([]*Enquiry, error) {
	col, err := mdb.GetCollection(ctx, EnquiryDbName, EnquiryColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding enquiries: %v", err)
	}
	defer cursor.Close(ctx)

	var enquiries []*Enquiry
	for cursor.Next(ctx) {
		var e Enquiry
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("error decoding enquiry: %v", err)
		}
		enquiries = append(enquiries, &e)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return enquiries, nil
}
