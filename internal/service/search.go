package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/pitchscout/scout-ui-api/internal/domain/model"
	"github.com/pitchscout/scout-ui-api/internal/ports"
)

// ErrBadSearchExpression is returned when a saved-search expression does not
// compile.
var ErrBadSearchExpression = errors.New("search expression does not compile")

// statsBatchSize bounds how many stat documents one search run loads.
const statsBatchSize = 500

// SearchEvaluator abstracts JMESPath operations for testability.
type SearchEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathEvaluator implements SearchEvaluator using go-jmespath.
type jmespathEvaluator struct{}

func (jmespathEvaluator) Validate(expr string) error {
	_, err := jmespath.Compile(expr)
	return err
}

func (jmespathEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// SearchServiceOptions groups dependencies for SearchService.
type SearchServiceOptions struct {
	Searches  ports.SavedSearchRepository
	Stats     ports.PlayerStatsRepository
	Evaluator SearchEvaluator
}

// SearchService owns saved searches: named JMESPath filters a scout keeps and
// re-runs against the player stat documents.
type SearchService struct {
	searches ports.SavedSearchRepository
	stats    ports.PlayerStatsRepository
	eval     SearchEvaluator
}

// NewSearchService constructs a new SearchService.
func NewSearchService(opts SearchServiceOptions) *SearchService {
	eval := opts.Evaluator
	if eval == nil {
		eval = jmespathEvaluator{}
	}
	return &SearchService{searches: opts.Searches, stats: opts.Stats, eval: eval}
}

// CreateSavedSearch validates the expression and stores the search. A bad
// expression fails here, not on first run.
func (s *SearchService) CreateSavedSearch(ctx context.Context, scoutID, name, expression string) (*model.SavedSearch, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, errors.New("expression is required")
	}
	if err := s.eval.Validate(expression); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSearchExpression, err)
	}

	search := &model.SavedSearch{ScoutID: scoutID, Name: strings.TrimSpace(name), Expression: expression}
	if err := s.searches.Create(ctx, search); err != nil {
		return nil, err
	}
	return search, nil
}

// ListSavedSearches returns the scout's saved searches.
func (s *SearchService) ListSavedSearches(ctx context.Context, scoutID string) ([]*model.SavedSearch, error) {
	return s.searches.ListByScout(ctx, scoutID)
}

// DeleteSavedSearch removes a scout's saved search by ID.
func (s *SearchService) DeleteSavedSearch(ctx context.Context, scoutID, id string) (bool, error) {
	return s.searches.Delete(ctx, scoutID, id)
}

// RunExpression filters the player stat documents with the given expression
// and returns the matching players. The expression sees an array of
// documents, each with player_id and name merged in, so filters look like
// `[?position == 'LW' && age < `21`]`.
func (s *SearchService) RunExpression(ctx context.Context, expression string) ([]*model.PlayerStats, error) {
	if err := s.eval.Validate(expression); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSearchExpression, err)
	}

	all, err := s.stats.List(ctx, statsBatchSize, 0)
	if err != nil {
		return nil, fmt.Errorf("load player stats: %w", err)
	}

	byID := make(map[string]*model.PlayerStats, len(all))
	docs := make([]any, 0, len(all))
	for _, ps := range all {
		doc := map[string]any{}
		if len(ps.Document) > 0 {
			if unmarshalErr := json.Unmarshal(ps.Document, &doc); unmarshalErr != nil {
				// A broken document should not sink the whole search.
				continue
			}
		}
		doc["player_id"] = ps.PlayerID
		doc["name"] = ps.Name
		docs = append(docs, doc)
		byID[ps.PlayerID] = ps
	}

	result, err := s.eval.Evaluate(expression, docs)
	if err != nil {
		return nil, fmt.Errorf("evaluate search: %w", err)
	}

	return matchResults(result, byID), nil
}

// RunSavedSearch loads a scout's saved search by ID and runs it.
func (s *SearchService) RunSavedSearch(ctx context.Context, scoutID, searchID string) ([]*model.PlayerStats, error) {
	list, err := s.searches.ListByScout(ctx, scoutID)
	if err != nil {
		return nil, err
	}
	for _, search := range list {
		if search.ID == searchID {
			return s.RunExpression(ctx, search.Expression)
		}
	}
	return nil, errors.New("saved search not found")
}

// matchResults maps evaluator output back to the stored documents via the
// injected player_id field. Elements that are not document maps are dropped.
func matchResults(result any, byID map[string]*model.PlayerStats) []*model.PlayerStats {
	items, ok := result.([]any)
	if !ok {
		return nil
	}
	out := make([]*model.PlayerStats, 0, len(items))
	for _, item := range items {
		doc, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, ok := doc["player_id"].(string)
		if !ok {
			continue
		}
		if ps, found := byID[id]; found {
			out = append(out, ps)
		}
	}
	return out
}
