package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrackr/internal/config"
	"jobtrackr/internal/services"
)

const sampleResume = "John Doe. Professional summary: 5 years of experience in software engineering. " +
	"Education: BSc Computer Science. Skills: JavaScript, Python, AWS. Email: john@example.com. " +
	"Improved deployment times by 40% and led multiple projects."

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	analyzer := services.NewContentAnalyzer()
	fallback := services.NewFallbackGenerator(analyzer)
	generator, err := services.NewGenerationGateway(config.GeminiConfig{}, fallback)
	require.NoError(t, err)

	handler := NewAIHandler(
		services.NewTextExtractor(),
		analyzer,
		services.NewPromptBuilder(),
		generator,
		services.NewResponseAssembler(analyzer),
		services.NewStorageService(t.TempDir(), 5*1024*1024),
	)

	app := fiber.New()
	app.Post("/ai/analyze-resume", handler.AnalyzeResume)
	app.Post("/ai/cover-letter", handler.GenerateCoverLetter)
	app.Post("/ai/interview-questions", handler.GenerateInterviewQuestions)
	app.Post("/ai/success-probability", handler.AnalyzeSuccessProbability)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, fields map[string]string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, 10000)
	require.NoError(t, err)

	return resp, decodeBody(t, resp)
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 10000)
	require.NoError(t, err)

	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return parsed
}

func TestAnalyzeResume(t *testing.T) {
	app := newTestApp(t)

	t.Run("missing job description", func(t *testing.T) {
		resp, body := postForm(t, app, "/ai/analyze-resume", map[string]string{
			"resumeText": sampleResume,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Job description is required", body["message"])
	})

	t.Run("missing resume content", func(t *testing.T) {
		resp, body := postForm(t, app, "/ai/analyze-resume", map[string]string{
			"jobDescription": "Requires JavaScript and Python",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body["message"], "Resume content is required")
	})

	t.Run("inline resume analyzed", func(t *testing.T) {
		resp, body := postForm(t, app, "/ai/analyze-resume", map[string]string{
			"jobDescription": "Requires JavaScript, Python and AWS",
			"resumeText":     sampleResume,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, body["error"])

		analysis, ok := body["analysis"].(map[string]interface{})
		require.True(t, ok)

		summary, ok := analysis["summary"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(100), summary["skillMatchPercentage"])
		assert.NotEmpty(t, summary["matchLevel"])
		assert.NotEmpty(t, analysis["rawAnalysis"])
		assert.NotEmpty(t, analysis["strengths"])
	})
}

func TestGenerateCoverLetter(t *testing.T) {
	app := newTestApp(t)

	t.Run("missing required fields", func(t *testing.T) {
		resp, _ := postJSON(t, app, "/ai/cover-letter", map[string]string{
			"jobTitle": "Engineer",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing job description", func(t *testing.T) {
		resp, body := postJSON(t, app, "/ai/cover-letter", map[string]string{
			"jobTitle":    "Engineer",
			"companyName": "Acme",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Job description is required", body["message"])
	})

	t.Run("letter generated with insights", func(t *testing.T) {
		resp, body := postJSON(t, app, "/ai/cover-letter", map[string]string{
			"jobTitle":       "Engineer",
			"companyName":    "Acme",
			"jobDescription": "We value innovation. JavaScript and SQL in fintech.",
			"userName":       "Jane",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		payload, ok := body["coverLetter"].(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, payload["coverLetter"], "Dear Hiring Manager")

		insights, ok := payload["companyInsights"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "finance", insights["industry"])
	})
}

func TestGenerateInterviewQuestions(t *testing.T) {
	app := newTestApp(t)

	t.Run("missing title or company", func(t *testing.T) {
		resp, _ := postJSON(t, app, "/ai/interview-questions", map[string]string{
			"jobTitle": "Engineer",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("questions generated", func(t *testing.T) {
		resp, body := postJSON(t, app, "/ai/interview-questions", map[string]string{
			"jobTitle":       "Engineer",
			"companyName":    "Acme",
			"jobDescription": "JavaScript heavy role",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		payload, ok := body["interview"].(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, payload["interviewQuestions"], "TECHNICAL QUESTIONS")
		assert.NotEmpty(t, payload["preparationTips"])
	})
}

func TestAnalyzeSuccessProbability(t *testing.T) {
	app := newTestApp(t)

	t.Run("missing job description", func(t *testing.T) {
		resp, _ := postForm(t, app, "/ai/success-probability", map[string]string{
			"resumeText": sampleResume,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing resume content", func(t *testing.T) {
		resp, body := postForm(t, app, "/ai/success-probability", map[string]string{
			"jobDescription": "Requires JavaScript and Python",
			"jobTitle":       "Engineer",
			"companyName":    "Acme",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body["message"], "Resume content is required")
	})

	t.Run("invalid experience years", func(t *testing.T) {
		resp, body := postForm(t, app, "/ai/success-probability", map[string]string{
			"jobDescription":  "Requires Python",
			"resumeText":      sampleResume,
			"experienceYears": "lots",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body["message"], "experienceYears")
	})

	t.Run("analysis produced", func(t *testing.T) {
		resp, body := postForm(t, app, "/ai/success-probability", map[string]string{
			"jobDescription":  "Requires JavaScript and Python",
			"resumeText":      sampleResume,
			"jobTitle":        "Engineer",
			"companyName":     "Acme",
			"experienceYears": "4",
			"education":       "BSc",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		payload, ok := body["successAnalysis"].(map[string]interface{})
		require.True(t, ok)
		assert.Regexp(t, `^\d+%$`, payload["successProbability"])
		assert.NotEmpty(t, payload["confidenceLevel"])

		breakdown, ok := payload["scoreBreakdown"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Good", breakdown["educationAlignment"])
	})
}
