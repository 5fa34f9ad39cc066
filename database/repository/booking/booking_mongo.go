package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"courtside/models"
)

func (r *mongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

func (r *mongoBookingRepo) GetByPaymentIntent(ctx context.Context, intentID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"payment_intent_id": intentID}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to fetch booking for intent %s: %w", intentID, err)
	}
	return &booking, nil
}

// dayRange brackets a calendar date; stored dates can carry a time-of-day
// artifact, so equality filters on the timestamp are never used.
func dayRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

func (r *mongoBookingRepo) GetByCourtAndDate(ctx context.Context, courtID string, date time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	from, to := dayRange(date)
	filter := bson.M{
		"court_id": courtID,
		"date":     bson.M{"$gte": from, "$lt": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for court %s: %w", courtID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) ReserveTransactionally(ctx context.Context, booking *models.Booking, validate func(snapshot []models.Booking) error) error {
	sess, err := r.coll.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		from, to := dayRange(booking.Date)
		cursor, err := r.coll.Find(sc, bson.M{
			"court_id": booking.CourtID,
			"date":     bson.M{"$gte": from, "$lt": to},
		})
		if err != nil {
			return fmt.Errorf("ledger snapshot failed: %w", err)
		}
		var snapshot []models.Booking
		if err := cursor.All(sc, &snapshot); err != nil {
			return err
		}

		if err := validate(snapshot); err != nil {
			return err
		}

		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, bookingID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": bookingID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("failed to update booking %s status: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBookingRepo) SetPaymentIntent(ctx context.Context, bookingID, intentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": bookingID},
		bson.M{"$set": bson.M{"payment_intent_id": intentID}},
	)
	if err != nil {
		return fmt.Errorf("failed to set payment intent on booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBookingRepo) CancelStalePaymentPending(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.coll.UpdateMany(ctx,
		bson.M{
			"status":     models.StatusPaymentPending,
			"created_at": bson.M{"$lt": cutoff},
		},
		bson.M{"$set": bson.M{"status": models.StatusCancelled}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to reap stale payment_pending bookings: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *mongoBookingRepo) VenueTotals(ctx context.Context, venueID string) (int, float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"venue_id": venueID,
			"status":   bson.M{"$in": bson.A{models.StatusConfirmed, models.StatusCompleted}},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$pricing.total_amount"},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate venue %s totals: %w", venueID, err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Count   int     `bson:"count"`
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, 0, err
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	return rows[0].Count, rows[0].Revenue, nil
}
