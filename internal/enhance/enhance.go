// Package enhance is the optional LLM path: it asks a chat model to pull
// skills, a summary and highlights out of the posting text. The model is
// treated as untrusted and possibly unavailable — every failure mode
// degrades to "no enhancement" and the rule-based pipeline result stands.
package enhance

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/sync/semaphore"

	"github.com/jobsift/jobsift/internal/llm"
	"github.com/jobsift/jobsift/internal/record"
)

const (
	// maxInputChars truncates what we send to the model; postings longer
	// than this rarely add signal past the opening sections.
	maxInputChars  = 4000
	defaultTimeout = 30 * time.Second
)

const systemPrompt = "You are an assistant that analyzes job descriptions. " +
	"Extract from the posting: " +
	`1. "skills": required technical and soft skills (array of strings); ` +
	`2. "summary": a brief 2-3 sentence summary of the job; ` +
	`3. "highlights": the 3-5 most appealing aspects of the job (array of strings); ` +
	`4. "notes": additional details a job seeker should know (string). ` +
	"Respond with strict JSON containing exactly these fields, no narration. Be concise and factual."

// Enhancer calls a chat model with a hard per-call timeout and a global cap
// on in-flight calls. When the cap is saturated or the call fails in any
// way, Enhance reports "no enhancement" rather than an error.
type Enhancer struct {
	Client  llm.Client
	Model   string
	Timeout time.Duration

	inflight *semaphore.Weighted
}

// New builds an Enhancer allowing at most maxInFlight concurrent calls.
func New(client llm.Client, model string, timeout time.Duration, maxInFlight int64) *Enhancer {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if maxInFlight <= 0 {
		maxInFlight = 4
	}
	return &Enhancer{
		Client:   client,
		Model:    model,
		Timeout:  timeout,
		inflight: semaphore.NewWeighted(maxInFlight),
	}
}

// Available probes the backend by listing models, best-effort. It is only
// used for a startup log line; a false result does not disable the path.
func (e *Enhancer) Available(ctx context.Context) bool {
	lister, ok := e.Client.(llm.ModelLister)
	if !ok {
		return e.Client != nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := lister.ListModels(ctx)
	return err == nil
}

// Enhance asks the model for a partial record. A nil record with nil error
// means "no enhancement"; the caller proceeds rule-based-only. The returned
// record carries only the fields the model produced plus a completeness
// quality score.
func (e *Enhancer) Enhance(ctx context.Context, text string) (*record.JobRecord, error) {
	if e == nil || e.Client == nil || strings.TrimSpace(e.Model) == "" {
		return nil, nil
	}
	if !e.inflight.TryAcquire(1) {
		log.Debug().Msg("enhancer saturated; falling back to rule-based result")
		return nil, nil
	}
	defer e.inflight.Release(1)

	if len(text) > maxInputChars {
		text = text[:maxInputChars]
	}

	ctx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	resp, err := e.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "JOB DESCRIPTION:\n'''\n" + text + "\n'''"},
		},
		Temperature: 0.1,
		N:           1,
	})
	if err != nil {
		log.Warn().Err(err).Msg("enhancer call failed; using rule-based result")
		return nil, nil
	}
	if len(resp.Choices) == 0 {
		return nil, nil
	}

	payload, ok := parsePayload(resp.Choices[0].Message.Content)
	if !ok {
		log.Warn().Msg("enhancer returned unparseable payload; using rule-based result")
		return nil, nil
	}
	return payload.toRecord(), nil
}

// payload is the JSON shape requested from the model.
type payload struct {
	Skills     []string `json:"skills"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
	Notes      string   `json:"notes"`
}

var (
	fencedJSON = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")
	braceBlock = regexp.MustCompile(`\{[\s\S]*\}`)
)

// parsePayload accepts clean JSON, a fenced json block, or the widest
// brace-delimited span — models decorate their output in all three ways.
func parsePayload(raw string) (payload, bool) {
	raw = strings.TrimSpace(raw)
	var p payload
	if err := json.Unmarshal([]byte(raw), &p); err == nil {
		return p, true
	}
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		if err := json.Unmarshal([]byte(m[1]), &p); err == nil {
			return p, true
		}
	}
	if m := braceBlock.FindString(raw); m != "" {
		if err := json.Unmarshal([]byte(m), &p); err == nil {
			return p, true
		}
	}
	return payload{}, false
}

func (p payload) toRecord() *record.JobRecord {
	rec := &record.JobRecord{
		Skills:       cleanList(p.Skills),
		Summary:      strings.TrimSpace(p.Summary),
		Highlights:   cleanList(p.Highlights),
		QualityScore: p.qualityScore(),
	}
	return rec
}

// qualityScore grades completeness of the model output: skills, summary
// and highlights carry most of the weight, notes a little.
func (p payload) qualityScore() float64 {
	score := 0.0
	if n := len(cleanList(p.Skills)); n > 0 {
		score += 0.3 * minFloat(1, float64(n)/5)
	}
	if n := len(strings.TrimSpace(p.Summary)); n > 10 {
		score += 0.3 * minFloat(1, float64(n)/100)
	}
	if n := len(cleanList(p.Highlights)); n > 0 {
		score += 0.3 * minFloat(1, float64(n)/3)
	}
	if n := len(strings.TrimSpace(p.Notes)); n > 0 {
		score += 0.1 * minFloat(1, float64(n)/50)
	}
	return score
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
