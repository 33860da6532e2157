package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"garage-backend/internal/app/config"
	"garage-backend/internal/app/dto"
	"garage-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestHandler поднимает обработчики на sqlite-базе.
// Маршруты регистрируются без middleware авторизации,
// проверка ролей покрыта тестами пакета middleware.
func setupTestHandler(t *testing.T) (*Handler, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "garage_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	repo, err := repository.NewWithDB(db)
	require.NoError(t, err)

	cfg := &config.Config{InspectionAmount: 100}
	h := NewHandler(repo, nil, cfg, nil)

	router := gin.New()
	router.POST("/car/add", h.AddCar)
	router.GET("/car/list", h.ListCars)
	router.POST("/car/installPartsInCar/:licensePlate/:partId", h.InstallPartsInCar)
	router.POST("/car/addRepairingActionsInCar/:licensePlate/:operationId", h.AddRepairingActionsInCar)
	router.POST("/parts/add", h.AddPart)
	router.POST("/parts/:id/image", h.UploadPartImage)
	router.POST("/repairOperations/add", h.AddRepairOperation)
	router.POST("/receipts/generate/:licensePlate", h.GenerateReceipt)
	router.GET("/receipts/list", h.ListReceipts)
	router.GET("/receipts/getByLicensePlate/:licensePlate", h.GetReceiptsByLicensePlate)

	return h, router
}

func do(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, dto.ResponseDto) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp dto.ResponseDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func addTestCar(t *testing.T, router *gin.Engine, licensePlate string) {
	t.Helper()

	w, resp := do(t, router, http.MethodPost, "/car/add", dto.AddCarRequest{
		LicensePlate: licensePlate,
		Customer: dto.AddCustomerRequest{
			Surname:     "Khan",
			Address:     "Hayatabad, Peshawar",
			PhoneNumber: "0333-1234567",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Car is successfully added in the database", resp.Message)
}

func TestListCarsEmptyGives404Envelope(t *testing.T) {
	_, router := setupTestHandler(t)

	w, resp := do(t, router, http.MethodGet, "/car/list", nil)

	// Пустой список - это 404 с конвертом, statusCode дублирует HTTP-статус,
	// result несёт пустой массив, а не null
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "There is no car registered yet in the database", resp.Message)
	assert.Contains(t, w.Body.String(), `"result":[]`)
}

func TestInstallPartOverHTTP(t *testing.T) {
	_, router := setupTestHandler(t)
	addTestCar(t, router, "81-PN-PK")

	w, _ := do(t, router, http.MethodPost, "/parts/add", dto.AddPartRequest{
		Name: "Brake Pad", Price: 50, Stock: 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := do(t, router, http.MethodPost, "/car/installPartsInCar/81-PN-PK/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "The part is successfully installed in the car !!", resp.Message)

	// Остаток исчерпан: повторная установка неотличима от несуществующего id
	w, resp = do(t, router, http.MethodPost, "/car/installPartsInCar/81-PN-PK/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "There is no part in the database against this id", resp.Message)
}

func TestInstallPartUnknownCarOverHTTP(t *testing.T) {
	_, router := setupTestHandler(t)

	w, resp := do(t, router, http.MethodPost, "/car/installPartsInCar/NO-SUCH-CAR/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "There is no car against this license plate", resp.Message)
}

func TestGenerateReceiptOverHTTP(t *testing.T) {
	_, router := setupTestHandler(t)
	addTestCar(t, router, "81-PN-PK")

	w, _ := do(t, router, http.MethodPost, "/parts/add", dto.AddPartRequest{
		Name: "Brake Pad", Price: 50, Stock: 5,
	})
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, router, http.MethodPost, "/repairOperations/add", dto.AddRepairOperationRequest{
		RepairAction: "Engine Tuning", Price: 120,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, router, http.MethodPost, "/car/installPartsInCar/81-PN-PK/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, router, http.MethodPost, "/car/addRepairingActionsInCar/81-PN-PK/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := do(t, router, http.MethodPost, "/receipts/generate/81-PN-PK", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Receipt is successfully generated for this car", resp.Message)

	// total = inspection 100 + part 50 + operation 120
	receipt, ok := resp.Result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 270.0, receipt["totalAmountOfRepairing"])
	assert.Equal(t, "pending", receipt["status"])
}

func TestListReceiptsEmptyGives404Envelope(t *testing.T) {
	_, router := setupTestHandler(t)

	w, resp := do(t, router, http.MethodGet, "/receipts/list", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "There is no receipt generated yet in the database", resp.Message)
	assert.Contains(t, w.Body.String(), `"result":[]`)
}

func TestGetReceiptsByLicensePlateAlways200(t *testing.T) {
	_, router := setupTestHandler(t)

	// Фильтр по госномеру не проверяет существование машины и не даёт 404
	w, resp := do(t, router, http.MethodGet, "/receipts/getByLicensePlate/NO-SUCH-CAR", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "These are the receipts against this license plate", resp.Message)
	assert.Contains(t, w.Body.String(), `"result":[]`)
}

func TestUploadPartImageWithoutStorage(t *testing.T) {
	_, router := setupTestHandler(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "brake_pad.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/parts/1/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Без MinIO загрузка отвечает конвертом, а не паникой
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ResponseDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "part image storage is not available", resp.Message)
}
