package courtRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"courtside/models"
)

func (r *mongoCourtRepo) GetCourtByID(ctx context.Context, courtID string) (*models.Court, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var court models.Court
	if err := r.courtColl.FindOne(ctx, bson.M{"id": courtID}).Decode(&court); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("court %s not found: %w", courtID, err)
		}
		return nil, fmt.Errorf("failed to fetch court %s: %w", courtID, err)
	}
	return &court, nil
}

func (r *mongoCourtRepo) GetVenueByID(ctx context.Context, venueID string) (*models.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var venue models.Venue
	if err := r.venueColl.FindOne(ctx, bson.M{"id": venueID}).Decode(&venue); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("venue %s not found: %w", venueID, err)
		}
		return nil, fmt.Errorf("failed to fetch venue %s: %w", venueID, err)
	}
	return &venue, nil
}

func (r *mongoCourtRepo) GetCourtsByVenueAndSport(ctx context.Context, venueID, sportType string) ([]models.Court, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"venue_id": venueID, "sport_type": sportType}
	opts := options.Find().SetSort(bson.D{{Key: "court_number", Value: 1}})
	cursor, err := r.courtColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list courts for venue %s: %w", venueID, err)
	}
	defer cursor.Close(ctx)

	var courts []models.Court
	if err := cursor.All(ctx, &courts); err != nil {
		return nil, err
	}
	return courts, nil
}

func (r *mongoCourtRepo) UpdateSchedule(ctx context.Context, courtID string, schedule models.WeeklySchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.courtColl.UpdateOne(ctx,
		bson.M{"id": courtID},
		bson.M{"$set": bson.M{"schedule": schedule}},
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule for court %s: %w", courtID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCourtRepo) GetBlockedSlots(ctx context.Context, courtID string) ([]models.BlockedSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Insertion order matters: BlocksOn reports the first overlapping block.
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.blockedColl.Find(ctx, bson.M{"court_id": courtID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked slots for court %s: %w", courtID, err)
	}
	defer cursor.Close(ctx)

	var slots []models.BlockedSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *mongoCourtRepo) AddBlockedSlot(ctx context.Context, slot *models.BlockedSlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.blockedColl.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("failed to insert blocked slot: %w", err)
	}
	return nil
}

func (r *mongoCourtRepo) RemoveBlockedSlot(ctx context.Context, courtID, blockID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.blockedColl.DeleteOne(ctx, bson.M{"id": blockID, "court_id": courtID})
	if err != nil {
		return fmt.Errorf("failed to remove blocked slot %s: %w", blockID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCourtRepo) ListVenueIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.venueColl.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID string `bson:"id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}

func (r *mongoCourtRepo) UpdateVenueAggregates(ctx context.Context, venueID string, totalBookings int, totalRevenue float64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.venueColl.UpdateOne(ctx,
		bson.M{"id": venueID},
		bson.M{"$set": bson.M{
			"total_bookings": totalBookings,
			"total_revenue":  totalRevenue,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update aggregates for venue %s: %w", venueID, err)
	}
	return nil
}
