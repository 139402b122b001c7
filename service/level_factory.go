package service

import (
	"fmt"

	"github.com/beka-birhanu/grid-maze/game/rng"
	"github.com/beka-birhanu/grid-maze/service/i"
)

// NewLevelFactory returns a factory that builds a fresh level from c on every
// call. With a seed, the k-th level (counting from zero) is generated from
// seed+k, so a whole session can be replayed. Without one, c.Rand is used,
// falling back to OS entropy.
func NewLevelFactory(c *Config, seed *uint64) i.LevelFactory {
	var played uint64
	return func() (i.LevelController, error) {
		levelConfig := *c
		var src *rng.Source
		if seed != nil {
			src = rng.NewSeeded(*seed + played)
			levelConfig.Rand = src
		}
		played++

		l, err := NewLevel(&levelConfig)
		if err != nil {
			return nil, err
		}
		if src != nil {
			l.logger.Info(fmt.Sprintf("level %s generated from seed %d", l.id, src.Seed()))
		}
		return l, nil
	}
}
