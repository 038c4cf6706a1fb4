// file: internals/features/finance/settlement/service/settlement_service_test.go
package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	admmodel "edubridge_backend/internals/features/admissions/model"
	submodel "edubridge_backend/internals/features/finance/submissions/model"
)

// dryRunDB builds a gorm handle that renders SQL without touching a server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=test dbname=test",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

// The pending-state guard is only at-most-once if the submission and admission
// reads actually take a row lock, so the rendered SQL must carry FOR UPDATE.
func TestLockForUpdateRendersRowLock(t *testing.T) {
	db := dryRunDB(t)

	var sub submodel.FeeSubmissionModel
	stmt := lockForUpdate(db).First(&sub, "submission_id = ?", uuid.New()).Statement
	subSQL := stmt.SQL.String()
	require.Contains(t, subSQL, "FOR UPDATE", subSQL)
	require.True(t, strings.HasSuffix(strings.TrimSpace(subSQL), "FOR UPDATE"), subSQL)

	var adm admmodel.AdmissionModel
	stmt = lockForUpdate(db).First(&adm, "admission_id = ?", uuid.New()).Statement
	require.Contains(t, stmt.SQL.String(), "FOR UPDATE")
}

func TestPlainFirstDoesNotLock(t *testing.T) {
	db := dryRunDB(t)

	var sub submodel.FeeSubmissionModel
	stmt := db.First(&sub, "submission_id = ?", uuid.New()).Statement
	require.NotContains(t, stmt.SQL.String(), "FOR UPDATE")
}
