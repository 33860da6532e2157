package repository

import (
	"testing"

	"garage-backend/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inspectionAmount = 100.0

// seedRepairedCar готовит машину с одной деталью и одной операцией
func seedRepairedCar(t *testing.T, repo *Repository) *ds.Part {
	t.Helper()

	seedCar(t, repo, "81-PN-PK")

	part := &ds.Part{Name: "Brake Pad", Price: 50, Stock: 5}
	require.NoError(t, repo.CreatePart(part))
	_, err := repo.InstallPart("81-PN-PK", part.ID)
	require.NoError(t, err)

	operation := &ds.RepairOperation{RepairAction: "Engine Tuning", Price: 120}
	require.NoError(t, repo.CreateRepairOperation(operation))
	_, err = repo.AttachOperation("81-PN-PK", operation.ID)
	require.NoError(t, err)

	return part
}

func TestGenerateReceiptTotals(t *testing.T) {
	repo := setupTestRepo(t)
	seedRepairedCar(t, repo)

	receipt, err := repo.GenerateReceipt("81-PN-PK", inspectionAmount)
	require.NoError(t, err)

	assert.Equal(t, "81-PN-PK", receipt.CarLicensePlate)
	assert.Equal(t, ds.ReceiptStatusPending, receipt.Status)
	assert.Equal(t, inspectionAmount, receipt.InspectionAmount)
	assert.Equal(t, 50.0, receipt.PartsAmount)
	assert.Equal(t, 120.0, receipt.RepairOperationsAmount)
	assert.Equal(t, 270.0, receipt.TotalAmountOfRepairing)

	require.Len(t, receipt.PartsList, 1)
	assert.Equal(t, "Brake Pad", receipt.PartsList[0].Name)
	require.Len(t, receipt.RepairOperationsList, 1)
	assert.Equal(t, "Engine Tuning", receipt.RepairOperationsList[0].RepairAction)
}

func TestGenerateReceiptUnknownCar(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GenerateReceipt("NO-SUCH-CAR", inspectionAmount)
	require.ErrorIs(t, err, ErrCarNotFound)
}

func TestGenerateReceiptNotIdempotent(t *testing.T) {
	repo := setupTestRepo(t)
	seedRepairedCar(t, repo)

	first, err := repo.GenerateReceipt("81-PN-PK", inspectionAmount)
	require.NoError(t, err)
	second, err := repo.GenerateReceipt("81-PN-PK", inspectionAmount)
	require.NoError(t, err)

	// Повторный вызов создаёт вторую квитанцию, а не возвращает первую
	assert.NotEqual(t, first.ID, second.ID)

	receipts, err := repo.GetReceiptsByLicensePlate("81-PN-PK")
	require.NoError(t, err)
	assert.Len(t, receipts, 2)
}

func TestReceiptSnapshotIsDecoupled(t *testing.T) {
	repo := setupTestRepo(t)
	part := seedRepairedCar(t, repo)

	receipt, err := repo.GenerateReceipt("81-PN-PK", inspectionAmount)
	require.NoError(t, err)

	// Подорожание детали после генерации не меняет снимок
	part.Price = 500
	_, err = repo.UpdatePart(part)
	require.NoError(t, err)

	stored, err := repo.GetReceiptByID(receipt.ID)
	require.NoError(t, err)
	require.Len(t, stored.PartsList, 1)
	assert.Equal(t, 50.0, stored.PartsList[0].Price)
	assert.Equal(t, 270.0, stored.TotalAmountOfRepairing)
}

func TestUpdateReceiptFullReplace(t *testing.T) {
	repo := setupTestRepo(t)
	seedRepairedCar(t, repo)

	receipt, err := repo.GenerateReceipt("81-PN-PK", inspectionAmount)
	require.NoError(t, err)

	// Полная замена: суммы не пересчитываются, берутся как есть
	receipt.PartsList = []ds.ReceiptPart{
		{Name: "Clutch Plate", Price: 200},
	}
	receipt.RepairOperationsList = []ds.ReceiptOperation{}
	receipt.PartsAmount = 200
	receipt.RepairOperationsAmount = 0
	receipt.TotalAmountOfRepairing = 726

	updated, err := repo.UpdateReceipt(receipt)
	require.NoError(t, err)

	require.Len(t, updated.PartsList, 1)
	assert.Equal(t, "Clutch Plate", updated.PartsList[0].Name)
	assert.Empty(t, updated.RepairOperationsList)
	assert.Equal(t, 726.0, updated.TotalAmountOfRepairing)
}

func TestUpdateReceiptMissing(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.UpdateReceipt(&ds.Receipt{ID: 999, CarLicensePlate: "81-PN-PK"})
	require.ErrorIs(t, err, ErrReceiptNotFound)
}

func TestChangeReceiptStatusToPaid(t *testing.T) {
	repo := setupTestRepo(t)
	seedRepairedCar(t, repo)

	receipt, err := repo.GenerateReceipt("81-PN-PK", inspectionAmount)
	require.NoError(t, err)

	paid, err := repo.ChangeReceiptStatusToPaid(receipt.ID)
	require.NoError(t, err)

	// Меняется только статус
	assert.Equal(t, ds.ReceiptStatusPaid, paid.Status)
	assert.Equal(t, receipt.TotalAmountOfRepairing, paid.TotalAmountOfRepairing)
	require.Len(t, paid.PartsList, 1)

	_, err = repo.ChangeReceiptStatusToPaid(999)
	require.ErrorIs(t, err, ErrReceiptNotFound)
}

func TestDeleteReceipt(t *testing.T) {
	repo := setupTestRepo(t)
	seedRepairedCar(t, repo)

	receipt, err := repo.GenerateReceipt("81-PN-PK", inspectionAmount)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteReceipt(receipt.ID))

	_, err = repo.GetReceiptByID(receipt.ID)
	require.ErrorIs(t, err, ErrReceiptNotFound)

	require.ErrorIs(t, repo.DeleteReceipt(receipt.ID), ErrReceiptNotFound)
}
