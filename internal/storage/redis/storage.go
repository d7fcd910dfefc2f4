package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/daygrid/leagues/internal/model"
	"github.com/daygrid/leagues/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Rows are JSON blobs; set indexes track league members, a player's
// leagues, and who scored in a league on a date.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// League operations

func (s *Storage) SaveLeague(ctx context.Context, league *model.League) error {
	data, err := json.Marshal(league)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, leagueKey(league.ID), data, 0).Err()
}

func (s *Storage) GetLeague(ctx context.Context, id model.LeagueID) (*model.League, error) {
	data, err := s.client.Get(ctx, leagueKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrLeagueNotFound
		}
		return nil, err
	}

	var league model.League
	if err := json.Unmarshal(data, &league); err != nil {
		return nil, err
	}
	return &league, nil
}

func (s *Storage) LeagueExists(ctx context.Context, id model.LeagueID) (bool, error) {
	exists, err := s.client.Exists(ctx, leagueKey(id)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// Player operations

func (s *Storage) UpsertPlayer(ctx context.Context, player *model.Player) (*model.Player, error) {
	row := *player

	// Preserve CreatedAt when the player already exists
	existing, err := s.GetPlayer(ctx, player.UUID)
	if err != nil && !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}
	if existing != nil {
		row.CreatedAt = existing.CreatedAt
	}

	data, err := json.Marshal(&row)
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, playerKey(row.UUID), data, 0).Err(); err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *Storage) GetPlayer(ctx context.Context, uuid model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(uuid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// Membership operations

func (s *Storage) AddMembership(ctx context.Context, uuid model.PlayerID, leagueID model.LeagueID, joinedAt time.Time) error {
	data, err := json.Marshal(&model.Membership{
		PlayerUUID: uuid,
		LeagueID:   leagueID,
		JoinedAt:   joinedAt,
	})
	if err != nil {
		return err
	}

	// SetNX keeps the original JoinedAt on duplicate calls; the index
	// adds are idempotent set operations.
	pipe := s.client.Pipeline()
	pipe.SetNX(ctx, membershipKey(uuid, leagueID), data, 0)
	pipe.SAdd(ctx, membersIndexKey(leagueID), string(uuid))
	pipe.SAdd(ctx, leaguesIndexKey(uuid), string(leagueID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) HasMembership(ctx context.Context, uuid model.PlayerID, leagueID model.LeagueID) (bool, error) {
	return s.client.SIsMember(ctx, membersIndexKey(leagueID), string(uuid)).Result()
}

func (s *Storage) ListMembers(ctx context.Context, leagueID model.LeagueID) ([]model.Member, error) {
	uuids, err := s.client.SMembers(ctx, membersIndexKey(leagueID)).Result()
	if err != nil {
		return nil, err
	}

	members := make([]model.Member, 0, len(uuids))
	if len(uuids) == 0 {
		return members, nil
	}

	playerKeys := make([]string, len(uuids))
	for i, uuid := range uuids {
		playerKeys[i] = playerKey(model.PlayerID(uuid))
	}

	values, err := s.client.MGet(ctx, playerKeys...).Result()
	if err != nil {
		return nil, err
	}

	for i, uuid := range uuids {
		member := model.Member{PlayerUUID: model.PlayerID(uuid)}
		if values[i] != nil {
			var player model.Player
			if err := json.Unmarshal([]byte(values[i].(string)), &player); err == nil {
				member.DisplayName = player.DisplayName
			}
		}
		members = append(members, member)
	}
	return members, nil
}

func (s *Storage) ListLeagues(ctx context.Context, uuid model.PlayerID) ([]model.LeagueRef, error) {
	ids, err := s.client.SMembers(ctx, leaguesIndexKey(uuid)).Result()
	if err != nil {
		return nil, err
	}

	refs := make([]model.LeagueRef, 0, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	leagueKeys := make([]string, len(ids))
	for i, id := range ids {
		leagueKeys[i] = leagueKey(model.LeagueID(id))
	}

	values, err := s.client.MGet(ctx, leagueKeys...).Result()
	if err != nil {
		return nil, err
	}

	for i, id := range ids {
		ref := model.LeagueRef{LeagueID: model.LeagueID(id)}
		if values[i] != nil {
			var league model.League
			if err := json.Unmarshal([]byte(values[i].(string)), &league); err == nil {
				ref.LeagueName = league.Name
			}
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (s *Storage) CountMembers(ctx context.Context, leagueID model.LeagueID) (int, error) {
	count, err := s.client.SCard(ctx, membersIndexKey(leagueID)).Result()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// Score operations

func (s *Storage) UpsertScore(ctx context.Context, score *model.Score) (bool, error) {
	data, err := json.Marshal(score)
	if err != nil {
		return false, err
	}

	// The index add reports whether this (player, league, date) row is new
	pipe := s.client.Pipeline()
	added := pipe.SAdd(ctx, scoresIndexKey(score.LeagueID, score.Date), string(score.PlayerUUID))
	pipe.Set(ctx, scoreKey(score.PlayerUUID, score.LeagueID, score.Date), data, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return added.Val() == 1, nil
}

func (s *Storage) ScoresForDate(ctx context.Context, leagueID model.LeagueID, date model.Date) ([]model.ScoreEntry, error) {
	uuids, err := s.client.SMembers(ctx, scoresIndexKey(leagueID, date)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.ScoreEntry, 0, len(uuids))
	if len(uuids) == 0 {
		return entries, nil
	}

	scoreKeys := make([]string, len(uuids))
	for i, uuid := range uuids {
		scoreKeys[i] = scoreKey(model.PlayerID(uuid), leagueID, date)
	}

	values, err := s.client.MGet(ctx, scoreKeys...).Result()
	if err != nil {
		return nil, err
	}

	for _, val := range values {
		if val == nil {
			continue
		}
		var score model.Score
		if err := json.Unmarshal([]byte(val.(string)), &score); err != nil {
			continue
		}
		entries = append(entries, model.ScoreEntry{
			PlayerUUID: score.PlayerUUID,
			Mistakes:   score.Mistakes,
		})
	}
	return entries, nil
}

func (s *Storage) CountPlayedOnDate(ctx context.Context, leagueID model.LeagueID, date model.Date) (int, error) {
	count, err := s.client.SCard(ctx, scoresIndexKey(leagueID, date)).Result()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// Puzzle operations

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error {
	data, err := json.Marshal(puzzle)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, puzzleKey(puzzle.Date), data, 0).Err()
}

func (s *Storage) GetPuzzle(ctx context.Context, date model.Date) (*model.Puzzle, error) {
	data, err := s.client.Get(ctx, puzzleKey(date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPuzzleNotFound
		}
		return nil, err
	}

	var puzzle model.Puzzle
	if err := json.Unmarshal(data, &puzzle); err != nil {
		return nil, err
	}
	return &puzzle, nil
}
