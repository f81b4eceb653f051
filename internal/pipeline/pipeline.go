// Package pipeline composes the extraction stages into one configurable
// flow: normalize, extract fields, recognize skills/summary/highlights,
// merge metadata and body candidates, validate, cache. Every stage is
// best-effort; the pipeline's only failure mode is a record with more
// defaults than ideal.
package pipeline

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jobsift/jobsift/internal/cache"
	"github.com/jobsift/jobsift/internal/fields"
	"github.com/jobsift/jobsift/internal/highlights"
	"github.com/jobsift/jobsift/internal/normalize"
	"github.com/jobsift/jobsift/internal/record"
	"github.com/jobsift/jobsift/internal/skills"
	"github.com/jobsift/jobsift/internal/summary"
)

// Detail selects how much of the pipeline runs.
type Detail string

const (
	// DetailBasic extracts only the scalar fields.
	DetailBasic Detail = "basic"
	// DetailDetailed additionally runs the skills, summary and highlights
	// recognizers. It is the default.
	DetailDetailed Detail = "detailed"
)

// Options configures one extraction request.
type Options struct {
	UseEnhancer bool
	DetailLevel Detail
}

// Enhancer is the optional LLM path. A nil record with nil error means "no
// enhancement"; returned fields only fill what rule-based extraction left
// empty.
type Enhancer interface {
	Enhance(ctx context.Context, text string) (*record.JobRecord, error)
}

// Pipeline is safe for concurrent use: the stages are pure and the cache
// serializes its own access. Two concurrent requests for the same uncached
// fingerprint may both compute and race to populate the cache; results are
// idempotent so the race is harmless.
type Pipeline struct {
	Cache    *cache.Cache
	Enhancer Enhancer
}

// Extract processes one posting and always returns a well-formed record,
// whatever the input looks like.
func (p *Pipeline) Extract(ctx context.Context, content string, markup bool, opts Options) record.JobRecord {
	key := cache.Fingerprint(content, markup)
	if p.Cache != nil {
		if rec, ok := p.Cache.Get(key); ok {
			return cloneRecord(rec)
		}
	}

	rec := p.run(ctx, content, markup, opts)

	if p.Cache != nil {
		p.Cache.Set(key, cloneRecord(rec))
	}
	return rec
}

func (p *Pipeline) run(ctx context.Context, content string, markup bool, opts Options) record.JobRecord {
	clean := content
	runStage("normalize", func() {
		clean = normalize.CleanText(content, markup)
	})

	body := record.New()
	if strings.TrimSpace(clean) == "" {
		return body
	}

	runStage("fields", func() {
		body.Position = fields.Title(clean)
		body.Company = fields.Company(clean)
		body.JobLocation = fields.Location(clean)
		body.JobType = fields.Type(clean)
		body.Salary = fields.Salary(clean)
		body.JobDescription = fields.Description(clean)
	})

	if opts.DetailLevel != DetailBasic {
		runStage("skills", func() { body.Skills = skills.Extract(clean) })
		runStage("summary", func() { body.Summary = summary.Generate(clean) })
		runStage("highlights", func() { body.Highlights = highlights.Extract(clean) })
	}

	out := body
	if markup {
		// Start from a zero record, not New(): page metadata never carries
		// a job type or salary, and a pre-filled default would outrank the
		// body's extracted value in the merge.
		var meta record.JobRecord
		runStage("metadata", func() {
			m := normalize.ReadMetadata(content)
			meta.Position = m.Title
			meta.Company = m.Company
			meta.JobLocation = m.Location
			meta.JobDescription = m.Description
			meta.JobURL = m.URL
		})
		out = record.Merge(meta, body)
	}

	if opts.UseEnhancer && p.Enhancer != nil {
		p.applyEnhancement(ctx, &out, clean)
	}

	record.Clean(&out, clean)
	return out
}

// applyEnhancement fills fields the rule-based pass left empty from the
// enhancer's partial record. Enhancer failure is already downgraded to a
// nil record, so there is nothing to handle here beyond skipping.
func (p *Pipeline) applyEnhancement(ctx context.Context, out *record.JobRecord, clean string) {
	enh, err := p.Enhancer.Enhance(ctx, clean)
	if err != nil || enh == nil {
		return
	}
	if out.Position == "" {
		out.Position = enh.Position
	}
	if out.Company == "" {
		out.Company = enh.Company
	}
	if out.JobLocation == "" {
		out.JobLocation = enh.JobLocation
	}
	if len(out.Skills) == 0 && len(enh.Skills) > 0 {
		out.Skills = enh.Skills
	}
	if out.Summary == "" {
		out.Summary = enh.Summary
	}
	if len(out.Highlights) == 0 && len(enh.Highlights) > 0 {
		out.Highlights = enh.Highlights
	}
	out.QualityScore = enh.QualityScore
}

// runStage isolates one extractor stage: an unexpected panic is logged and
// the record keeps whatever earlier stages populated.
func runStage(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Str("stage", name).Interface("panic", r).Msg("extraction stage failed; keeping partial record")
		}
	}()
	fn()
}

// cloneRecord copies the record's slices so cached entries stay immutable
// even if a caller mutates the returned value.
func cloneRecord(r record.JobRecord) record.JobRecord {
	r.Skills = append([]string{}, r.Skills...)
	r.Highlights = append([]string{}, r.Highlights...)
	return r
}
