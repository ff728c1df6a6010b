package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"template-catalog-be/internal/dto"
	"template-catalog-be/internal/repository/memory"
	"template-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// envelope mirrors serverutils.BaseResponse for decoding in tests.
type envelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp() *fiber.App {
	factory := memory.NewRepositoryFactory(memory.NewStore())
	log := nopLogger{}

	templateService := service.NewTemplateService(factory, nil)
	featureService := service.NewFeatureService(factory, nil)
	linkService := service.NewLinkService(factory, nil)

	app := fiber.New()
	api := app.Group("/api")
	NewTemplateController(templateService, log).RegisterRoutes(api)
	NewFeatureController(featureService, log).RegisterRoutes(api)
	NewLinkController(linkService, log).RegisterRoutes(api)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env), "every response must carry a valid JSON envelope")
	return resp.StatusCode, env
}

func TestCreateTemplateEndpoint(t *testing.T) {
	app := newTestApp()

	status, env := doJSON(t, app, "POST", "/api/templates", `{"name":"A","description":"d"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "success", env.Status)

	var res dto.CreateTemplateResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, uint64(1), res.Id)
}

func TestCreateTemplateValidation(t *testing.T) {
	app := newTestApp()

	status, env := doJSON(t, app, "POST", "/api/templates", `{"description":"no name"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "error", env.Status)
}

func TestUpdateMissingTemplateStillResponds(t *testing.T) {
	app := newTestApp()

	status, env := doJSON(t, app, "PUT", "/api/templates/999", `{"name":"B"}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, env.Message, "not found")
}

func TestDuplicateFeatureSurfacesAsFailedCall(t *testing.T) {
	app := newTestApp()

	status, _ := doJSON(t, app, "POST", "/api/features", `{"name":"Dark Mode","feature_type":1}`)
	require.Equal(t, fiber.StatusOK, status)

	status, env := doJSON(t, app, "POST", "/api/features", `{"name":"Dark Mode","feature_type":2}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, env.Message, "duplicate")
}

func TestLinkLifecycleOverHTTP(t *testing.T) {
	app := newTestApp()

	_, featureEnv := doJSON(t, app, "POST", "/api/features", `{"name":"Dark Mode","feature_type":1}`)
	var feature dto.CreateFeatureResponse
	require.NoError(t, json.Unmarshal(featureEnv.Data, &feature))

	_, templateEnv := doJSON(t, app, "POST", "/api/templates", `{"name":"UI Pack","description":"desc"}`)
	var template dto.CreateTemplateResponse
	require.NoError(t, json.Unmarshal(templateEnv.Data, &template))

	status, linkEnv := doJSON(t, app, "POST", "/api/links", `{"feature_id":1,"template_id":1,"value":"on"}`)
	require.Equal(t, fiber.StatusOK, status)
	var link dto.CreateLinkResponse
	require.NoError(t, json.Unmarshal(linkEnv.Data, &link))
	require.NotNil(t, link.Id)

	// Same pair again: success without a new id
	status, dupEnv := doJSON(t, app, "POST", "/api/links", `{"feature_id":1,"template_id":1,"value":"off"}`)
	require.Equal(t, fiber.StatusOK, status)
	var dup dto.CreateLinkResponse
	require.NoError(t, json.Unmarshal(dupEnv.Data, &dup))
	assert.Nil(t, dup.Id)

	status, joinEnv := doJSON(t, app, "GET", "/api/templates/1/features", "")
	require.Equal(t, fiber.StatusOK, status)
	var join dto.GetTemplateFeaturesResponse
	require.NoError(t, json.Unmarshal(joinEnv.Data, &join))
	require.Len(t, join.Items, 1)
	assert.Equal(t, "Dark Mode", join.Items[0].Feature.Name)
	assert.Equal(t, "on", join.Items[0].Link.Value)

	status, _ = doJSON(t, app, "DELETE", "/api/links?feature_id=1&template_id=1", "")
	require.Equal(t, fiber.StatusOK, status)

	status, emptyEnv := doJSON(t, app, "GET", "/api/templates/1/features", "")
	require.Equal(t, fiber.StatusOK, status)
	var empty dto.GetTemplateFeaturesResponse
	require.NoError(t, json.Unmarshal(emptyEnv.Data, &empty))
	assert.Empty(t, empty.Items)
}

func TestDeleteLinkRequiresPair(t *testing.T) {
	app := newTestApp()

	status, env := doJSON(t, app, "DELETE", "/api/links?feature_id=1", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "error", env.Status)
}
