package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/NguyenDinhPhat-22CT112/healthAI/advisor"
)

// RecipeService generates disease-aware Vietnamese recipe suggestions via
// the Hugging Face Inference API. The dietary rule for the user's
// condition is embedded in the prompt so the model stays on-diet.
type RecipeService struct {
	client *http.Client
	token  string
	model  string
	cfg    *advisor.Config
}

func NewRecipeService(cfg *advisor.Config) *RecipeService {
	return &RecipeService{
		client: &http.Client{Timeout: 15 * time.Second},
		token:  os.Getenv("HUGGINGFACE_TOKEN"),
		model:  "google/flan-t5-small",
		cfg:    cfg,
	}
}

type RecipeRequest struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
	Disease     string   `json:"disease"`
}

// Suggest builds the prompt and returns the model's suggestions as plain
// bullet lines.
func (r *RecipeService) Suggest(req RecipeRequest, category advisor.DiseaseCategory) ([]string, error) {
	if r.token == "" {
		return nil, fmt.Errorf("HUGGINGFACE_TOKEN not set")
	}

	prompt := r.buildPrompt(req.Ingredients, category)

	body := map[string]any{
		"inputs": prompt,
		"parameters": map[string]any{
			"max_new_tokens": 256,
			"temperature":    0.7,
		},
	}
	b, _ := json.Marshal(body)

	httpReq, _ := http.NewRequest(
		"POST",
		fmt.Sprintf("https://api-inference.huggingface.co/models/%s", r.model),
		bytes.NewReader(b),
	)
	httpReq.Header.Set("Authorization", "Bearer "+r.token)
	httpReq.Header.Set("Content-Type", "application/json")
	// Ensure HF loads cold models instead of returning a "loading" error
	httpReq.Header.Set("x-wait-for-model", "true")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("hf request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read hf response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var hfErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &hfErr) == nil && hfErr.Error != "" {
			return nil, fmt.Errorf("hf api error (%d): %s", resp.StatusCode, hfErr.Error)
		}
		return nil, fmt.Errorf("hf api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var hfOut []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &hfOut); err != nil {
		preview := string(respBytes)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return nil, fmt.Errorf("decode hf response error: %v | body: %s", err, preview)
	}
	if len(hfOut) == 0 || strings.TrimSpace(hfOut[0].GeneratedText) == "" {
		return nil, fmt.Errorf("empty suggestions from hf")
	}

	return parseBullets(hfOut[0].GeneratedText), nil
}

func (r *RecipeService) buildPrompt(ingredients []string, category advisor.DiseaseCategory) string {
	var sb strings.Builder
	sb.WriteString("Bạn là chuyên gia ẩm thực Việt Nam. Gợi ý 2-3 món ăn từ nguyên liệu:\n")
	for _, ing := range ingredients {
		sb.WriteString("- " + ing + "\n")
	}

	if rule, ok := r.cfg.Rule(category); ok {
		sb.WriteString(fmt.Sprintf("\nNgười ăn mắc bệnh %s. %s\n", rule.DisplayName, rule.Principle))
		sb.WriteString("Tránh: " + strings.Join(rule.Avoid, ", ") + ".\n")
		sb.WriteString(fmt.Sprintf("Mỗi bữa tối đa %d kcal.\n", rule.MaxMealCalories))
	}

	sb.WriteString("\nTrả lời bằng gạch đầu dòng: tên món, cách nấu ngắn gọn, calo ước tính.")
	return sb.String()
}

// parseBullets splits generated text into clean bullet lines.
func parseBullets(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimLeft(line, "-•* \t")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
