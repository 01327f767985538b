// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/spendview/backend/internal/application/usecase/chart"
	"github.com/spendview/backend/internal/application/usecase/entries"
	"github.com/spendview/backend/internal/application/usecase/window"
	"github.com/spendview/backend/internal/infra/server/router"
	"github.com/spendview/backend/internal/integration/adapters"
	"github.com/spendview/backend/internal/integration/cache"
	"github.com/spendview/backend/internal/integration/entrypoint/controller"
	"github.com/spendview/backend/internal/integration/entrypoint/middleware"
	"github.com/spendview/backend/internal/integration/persistence"
	"github.com/spendview/backend/internal/integration/persistence/model"
	"github.com/spendview/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// defaultSnapshot mirrors the payload used by the sync scenario so read
// scenarios can seed the same data through the API.
const defaultSnapshot = `{
	"expenses": [
		{"id": "exp-1", "description": "Groceries", "date": "2025-07-14", "amount": "45.50", "category": {"id": "cat-food", "name": "🍕 Food"}},
		{"id": 2, "description": "Dinner split", "date": "2025-07-16", "amount": "90", "shares": [{"user_id": 101, "share_amount": "30"}, {"user_id": "102", "share_amount": "60"}]},
		{"id": "exp-3", "description": "June rent", "date": "2025-06-02", "amount": "1200", "category": {"id": "cat-home", "name": "🏠 Housing"}}
	],
	"income": [
		{"id": "inc-1", "description": "Salary", "date": "2025-07-15", "amount": "3000"}
	]
}`

func TestFeatures(t *testing.T) {
	opts := godog.Options{
		Format:      "pretty",
		Paths:       []string{"../features"},
		Output:      colors.Colored(os.Stdout),
		Concurrency: 1,
		Randomize:   0,
		Strict:      true,
		TestingT:    t,
	}

	if tags := os.Getenv("GODOG_TAGS"); tags != "" {
		opts.Tags = tags
	}

	suite := godog.TestSuite{
		Name:                "spendview-api",
		ScenarioInitializer: InitializeScenario,
		Options:             &opts,
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	db          *mock.Db
	timeMock    *mock.Time
	serverPort  int
	accessToken string
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testTime *mock.Time
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	if testTime == nil {
		testTime = mock.NewTime()
	}

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		timeMock:   testTime,
		serverPort: testServerPort,
		db: mock.NewDb("spendview", map[string]any{
			"expenses":       &model.ExpenseModel{},
			"expense_shares": &model.ExpenseShareModel{},
			"income":         &model.IncomeModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)

	// Auth setup steps
	ctx.Given(`^I am authenticated as user "([^"]*)" in group "([^"]*)"$`, test.iAmAuthenticatedAsUserInGroup)
	ctx.Given(`^I hold an expired token for user "([^"]*)" in group "([^"]*)"$`, test.iHoldAnExpiredTokenForUserInGroup)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)

	// Data setup steps
	ctx.Given(`^the default snapshot is synced$`, test.theDefaultSnapshotIsSynced)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.response = nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			entryRepo := persistence.NewEntryRepository(testDB.DbConn)
			chartCache := cache.NewChartCache(mock.NewRedis(), 5*time.Minute)
			tokenService := adapters.NewTokenService(testJWTSecret)
			now := testTime.Now

			listEntriesUseCase := entries.NewListEntriesUseCase(entryRepo, now)
			searchEntriesUseCase := entries.NewSearchEntriesUseCase(entryRepo, now)
			syncEntriesUseCase := entries.NewSyncEntriesUseCase(entryRepo)
			getRangeUseCase := window.NewGetRangeUseCase(entryRepo, now)
			getChartUseCase := chart.NewGetChartUseCase(entryRepo, chartCache, now)

			healthController := controller.NewHealthController(
				func() bool { return testDB != nil && testDB.DbConn != nil },
				func() bool { return true },
			)
			entriesController := controller.NewEntriesController(
				listEntriesUseCase,
				searchEntriesUseCase,
				syncEntriesUseCase,
				getRangeUseCase,
			)
			chartController := controller.NewChartController(getChartUseCase)

			syncRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(healthController, entriesController, chartController, syncRateLimiter, authMiddleware)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) theCurrentTimeIs(timestamp string) error {
	current, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", timestamp, err)
	}
	t.timeMock.SetCurrentTime(current)
	return nil
}

func (t *testContext) iAmAuthenticatedAsUserInGroup(userID, groupID string) error {
	token, err := mintToken(userID, groupID, time.Now().UTC().Add(15*time.Minute))
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iHoldAnExpiredTokenForUserInGroup(userID, groupID string) error {
	token, err := mintToken(userID, groupID, time.Now().UTC().Add(-1*time.Hour))
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func mintToken(userID, groupID string, expiresAt time.Time) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":  userID,
		"group_id": groupID,
		"exp":      jwt.NewNumericDate(expiresAt),
		"iat":      jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		"nbf":      jwt.NewNumericDate(now.Add(-2 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (t *testContext) theDefaultSnapshotIsSynced() error {
	if t.accessToken == "" {
		return errors.New("authenticate before syncing the default snapshot")
	}
	if err := t.executeRequest(http.MethodPut, "/api/v1/entries", []byte(defaultSnapshot)); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("default snapshot sync failed with status %d: %v", t.response.status, t.response.body)
	}
	t.response = nil
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(body.Content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
