package casting

// Group names used by the game.
const (
	GroupBanner = "banner"
	GroupRobot  = "robot"
	GroupRock   = "rock"
	GroupGem    = "gem"
	GroupScore  = "score"
)

// Cast keeps track of every actor in the game, grouped by role name.
// Groups keep insertion order, and so does the order of the groups
// themselves, which makes AllActors deterministic.
type Cast struct {
	groups map[string][]*Actor
	order  []string
}

// NewCast creates an empty cast.
func NewCast() *Cast {
	return &Cast{
		groups: make(map[string][]*Actor),
	}
}

// AddActor appends actor to group, creating the group if needed.
func (c *Cast) AddActor(group string, actor *Actor) {
	if _, exists := c.groups[group]; !exists {
		c.order = append(c.order, group)
	}
	c.groups[group] = append(c.groups[group], actor)
}

// RemoveActor removes actor from group by identity.
// Removing an actor that is not in the group is a no-op.
func (c *Cast) RemoveActor(group string, actor *Actor) {
	actors := c.groups[group]
	for i, a := range actors {
		if a == actor {
			c.groups[group] = append(actors[:i:i], actors[i+1:]...)
			return
		}
	}
}

// FirstActor returns the first actor in group, or nil if the group is
// missing or empty.
func (c *Cast) FirstActor(group string) *Actor {
	actors := c.groups[group]
	if len(actors) == 0 {
		return nil
	}
	return actors[0]
}

// Actors returns a copy of the actors in group.
// Returns an empty slice if there aren't any.
func (c *Cast) Actors(group string) []*Actor {
	actors := c.groups[group]
	result := make([]*Actor, len(actors))
	copy(result, actors)
	return result
}

// AllActors returns every actor of every group, groups in the order they
// were first added.
func (c *Cast) AllActors() []*Actor {
	var total int
	for _, actors := range c.groups {
		total += len(actors)
	}

	result := make([]*Actor, 0, total)
	for _, group := range c.order {
		result = append(result, c.groups[group]...)
	}
	return result
}

// Len returns the number of actors in group.
func (c *Cast) Len(group string) int {
	return len(c.groups[group])
}

// Groups returns the group names in the order they were created.
func (c *Cast) Groups() []string {
	result := make([]string, len(c.order))
	copy(result, c.order)
	return result
}
