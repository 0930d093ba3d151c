package customers

import (
	"context"

	"github.com/fulltechhq/fulltech-backend/pkg/db/models"
	dbtypes "github.com/fulltechhq/fulltech-backend/pkg/db/types"
	"github.com/fulltechhq/fulltech-backend/pkg/enums"
	pkgerrors "github.com/fulltechhq/fulltech-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityRecorder appends rows to a customer's activity feed inside the caller's transaction.
type ActivityRecorder interface {
	Record(ctx context.Context, tx *gorm.DB, customerID uuid.UUID, activityType enums.ActivityType, detail map[string]any) error
}

type activityRecorder struct{}

// NewActivityRecorder exposes the default activity recorder.
func NewActivityRecorder() ActivityRecorder {
	return activityRecorder{}
}

func (activityRecorder) Record(ctx context.Context, tx *gorm.DB, customerID uuid.UUID, activityType enums.ActivityType, detail map[string]any) error {
	if tx == nil {
		return pkgerrors.New(pkgerrors.CodeDependency, "transaction required for activity record")
	}
	if !activityType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid activity type")
	}
	row := models.CustomerActivity{
		CustomerID: customerID,
		Type:       activityType,
		Detail:     dbtypes.JSONMap(detail),
	}
	if row.Detail == nil {
		row.Detail = dbtypes.JSONMap{}
	}
	if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record activity")
	}
	return nil
}
