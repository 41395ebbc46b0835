package appointments

import (
	"context"
	"errors"
	"strings"
	"vetcare-service/internal/app/contracts"
	"vetcare-service/internal/app/models"
	"vetcare-service/internal/pkg/constvars"
	"vetcare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) Create(ctx context.Context, appointment *models.Appointment) (string, error) {
	if appointment.ID == "" {
		appointment.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return appointment.ID, nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByProviderID(ctx context.Context, providerID string) ([]models.Appointment, error) {
	return r.findAll(ctx, bson.M{"providerId": providerID})
}

func (r *AppointmentMongoRepository) FindByClientID(ctx context.Context, clientID string) ([]models.Appointment, error) {
	return r.findAll(ctx, bson.M{"clientId": clientID})
}

func (r *AppointmentMongoRepository) findAll(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

// UpdateStatusIfCurrent is the single-document conditional transition:
// "apply only if the record is still what the actor decided on". The filter
// carries the provider as well as the status, because a transfer re-homes
// an appointment without changing its status and must still invalidate the
// previous provider's in-flight transitions. A matched count of zero means
// either the document vanished or another actor won the race; the two are
// reported apart so callers can refetch and re-decide.
func (r *AppointmentMongoRepository) UpdateStatusIfCurrent(ctx context.Context, appointmentID string, expectedStatus models.AppointmentStatus, expectedProviderID string, patch contracts.AppointmentPatch) error {
	filter := bson.M{"_id": appointmentID, "status": expectedStatus, "providerId": expectedProviderID}
	set := bson.M{"status": patch.Status}
	if patch.ProviderID != "" {
		set["providerId"] = patch.ProviderID
	}

	result, err := r.Collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		current, findErr := r.FindByID(ctx, appointmentID)
		if findErr != nil {
			return findErr
		}
		if current == nil {
			return exceptions.ErrAppointmentNotFound(nil)
		}
		return exceptions.ErrStatusConflict(nil)
	}
	return nil
}

// CreateSuccessorAndClose inserts the reschedule successor and closes the
// original as rescheduled_by_user in one multi-document transaction. On
// deployments without transaction support (standalone mongod) it degrades
// to sequential writes, and a failed second write is surfaced as
// ErrPartialTransactionFailure so the duplicate-pending state can be
// repaired through FindDuplicatePending.
func (r *AppointmentMongoRepository) CreateSuccessorAndClose(ctx context.Context, successor *models.Appointment, originalID string) (string, error) {
	if successor.ID == "" {
		successor.ID = primitive.NewObjectID().Hex()
	}

	session, err := r.Collection.Database().Client().StartSession()
	if err != nil {
		return r.createSuccessorAndCloseSequential(ctx, successor, originalID)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessionCtx mongo.SessionContext) (interface{}, error) {
		if _, err := r.Collection.InsertOne(sessionCtx, successor); err != nil {
			return nil, exceptions.ErrMongoDBInsertDocument(err)
		}
		if err := r.closeOriginal(sessionCtx, originalID); err != nil {
			return nil, err
		}
		return successor.ID, nil
	})
	if err != nil {
		if transactionsUnsupported(err) {
			return r.createSuccessorAndCloseSequential(ctx, successor, originalID)
		}
		return "", err
	}
	return successor.ID, nil
}

func (r *AppointmentMongoRepository) createSuccessorAndCloseSequential(ctx context.Context, successor *models.Appointment, originalID string) (string, error) {
	if _, err := r.Collection.InsertOne(ctx, successor); err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	if err := r.closeOriginal(ctx, originalID); err != nil {
		// successor already persisted: duplicate-pending state
		return successor.ID, exceptions.ErrPartialTransactionFailure(err)
	}
	return successor.ID, nil
}

func (r *AppointmentMongoRepository) closeOriginal(ctx context.Context, originalID string) error {
	filter := bson.M{"_id": originalID, "status": models.AppointmentRescheduled}
	update := bson.M{"$set": bson.M{"status": models.AppointmentRescheduledByUser}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrStatusConflict(nil)
	}
	return nil
}

// FindDuplicatePending is the reconciliation query for a torn reschedule:
// pending successors whose original never reached rescheduled_by_user.
func (r *AppointmentMongoRepository) FindDuplicatePending(ctx context.Context) ([]models.Appointment, error) {
	filter := bson.M{
		"originalAppointmentId": bson.M{"$exists": true, "$ne": ""},
		"status":                models.AppointmentPending,
	}
	successors, err := r.findAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	var duplicates []models.Appointment
	for _, successor := range successors {
		original, err := r.FindByID(ctx, successor.OriginalAppointmentID)
		if err != nil {
			return nil, err
		}
		if original != nil && original.Status != models.AppointmentRescheduledByUser {
			duplicates = append(duplicates, successor)
		}
	}
	return duplicates, nil
}

func transactionsUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		// IllegalOperation: transaction numbers only allowed on replica sets
		return cmdErr.Code == 20 || strings.Contains(cmdErr.Message, "Transaction numbers")
	}
	return false
}
