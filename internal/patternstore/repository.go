package patternstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"go-progression/internal/learning"
)

// Repository persists accumulated pattern observations in Qdrant so
// they survive across conversations. One point per (agent, pattern
// type); repeat detections are merged into the stored observation.
type Repository struct {
	Client         *qdrant.Client
	CollectionName string
}

// NewRepository connects to Qdrant and ensures the pattern collection
// exists
func NewRepository(qdrantURL, collectionName, apiKey string) (*Repository, error) {
	// Strip http:// or https:// prefix and any port
	qdrantURL = strings.TrimPrefix(qdrantURL, "http://")
	qdrantURL = strings.TrimPrefix(qdrantURL, "https://")

	host := qdrantURL
	if idx := strings.Index(qdrantURL, ":"); idx != -1 {
		host = qdrantURL[:idx]
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   6334, // gRPC port
		APIKey: apiKey,
		UseTLS: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	repo := &Repository{
		Client:         client,
		CollectionName: collectionName,
	}
	if err := repo.ensureCollection(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ensure pattern collection: %w", err)
	}
	return repo, nil
}

func (r *Repository) ensureCollection(ctx context.Context) error {
	exists, err := r.Client.CollectionExists(ctx, r.CollectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection existence: %w", err)
	}

	if !exists {
		// Patterns are looked up by payload filters, not similarity;
		// the vector is a schema placeholder.
		err = r.Client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: r.CollectionName,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     4,
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return fmt.Errorf("failed to create pattern collection: %w", err)
		}
		log.Printf("[PatternStore] Created collection: %s", r.CollectionName)
	}

	indexes := []string{"agent_id", "type", "outcome"}
	for _, field := range indexes {
		ft := qdrant.FieldType_FieldTypeKeyword
		_, err := r.Client.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
			CollectionName: r.CollectionName,
			FieldName:      field,
			FieldType:      &ft,
			Wait:           boolPtr(true),
		})
		if err != nil {
			// Index may already exist
			log.Printf("[PatternStore] Note: index creation for %s: %v", field, err)
		}
	}
	return nil
}

// pointID derives the stable point id for an (agent, type) pair
func pointID(agentID string, pt learning.PatternType) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(agentID+"/"+string(pt))).String()
}

// Record merges a fresh detection into the stored observation for its
// (agent, type) pair, creating it on first sight, and returns the
// accumulated pattern.
func (r *Repository) Record(ctx context.Context, p learning.Pattern) (learning.Pattern, error) {
	existing, found, err := r.get(ctx, p.AgentID, p.Type)
	if err != nil {
		return learning.Pattern{}, err
	}
	merged := p
	if found {
		merged = learning.MergePattern(existing, p)
	}
	if err := r.put(ctx, merged); err != nil {
		return learning.Pattern{}, err
	}
	return merged, nil
}

func (r *Repository) get(ctx context.Context, agentID string, pt learning.PatternType) (learning.Pattern, bool, error) {
	points, err := r.Client.Get(ctx, &qdrant.GetPoints{
		CollectionName: r.CollectionName,
		Ids:            []*qdrant.PointId{qdrant.NewIDUUID(pointID(agentID, pt))},
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return learning.Pattern{}, false, fmt.Errorf("failed to get pattern: %w", err)
	}
	if len(points) == 0 {
		return learning.Pattern{}, false, nil
	}
	p, err := pointToPattern(points[0])
	if err != nil {
		return learning.Pattern{}, false, err
	}
	return p, true, nil
}

func (r *Repository) put(ctx context.Context, p learning.Pattern) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal pattern: %w", err)
	}

	payload := map[string]*qdrant.Value{
		"pattern_data":  qdrant.NewValueString(string(raw)),
		"agent_id":      qdrant.NewValueString(p.AgentID),
		"type":          qdrant.NewValueString(string(p.Type)),
		"outcome":       qdrant.NewValueString(string(p.Outcome)),
		"observations":  qdrant.NewValueInt(int64(p.Observations)),
		"last_observed": qdrant.NewValueInt(p.LastObserved.Unix()),
	}

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDUUID(pointID(p.AgentID, p.Type)),
		Vectors: qdrant.NewVectors(make([]float32, 4)...),
		Payload: payload,
	}

	_, err = r.Client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: r.CollectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	return err
}

// ListByAgent returns all accumulated patterns for one agent
func (r *Repository) ListByAgent(ctx context.Context, agentID string) ([]learning.Pattern, error) {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("agent_id", agentID),
		},
	}

	scrollResult, err := r.Client.Scroll(ctx, &qdrant.ScrollPoints{
		CollectionName: r.CollectionName,
		Filter:         filter,
		Limit:          uint32Ptr(64), // at most one point per pattern type
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}

	patterns := make([]learning.Pattern, 0, len(scrollResult))
	for _, point := range scrollResult {
		p, err := pointToPattern(point)
		if err != nil {
			log.Printf("[PatternStore] Warning: failed to parse pattern: %v", err)
			continue
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

func pointToPattern(point *qdrant.RetrievedPoint) (learning.Pattern, error) {
	if point.Payload == nil {
		return learning.Pattern{}, fmt.Errorf("point has no payload")
	}
	dataVal, ok := point.Payload["pattern_data"]
	if !ok {
		return learning.Pattern{}, fmt.Errorf("point missing pattern_data payload")
	}
	var p learning.Pattern
	if err := json.Unmarshal([]byte(dataVal.GetStringValue()), &p); err != nil {
		return learning.Pattern{}, fmt.Errorf("failed to unmarshal pattern json: %w", err)
	}
	return p, nil
}

func boolPtr(b bool) *bool       { return &b }
func uint32Ptr(v uint32) *uint32 { return &v }
