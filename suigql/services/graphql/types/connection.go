package types

// ConnectionArgs are the relay-style pagination arguments.
type ConnectionArgs struct {
	First  *uint64 `json:"first,omitempty"`
	After  *string `json:"after,omitempty"`
	Last   *uint64 `json:"last,omitempty"`
	Before *string `json:"before,omitempty"`
}

type Edge[N any] struct {
	Cursor string `json:"cursor"`
	Node   N      `json:"node"`
}

type PageInfo struct {
	HasPreviousPage bool    `json:"hasPreviousPage"`
	HasNextPage     bool    `json:"hasNextPage"`
	StartCursor     *string `json:"startCursor,omitempty"`
	EndCursor       *string `json:"endCursor,omitempty"`
}

type Connection[N any] struct {
	Edges    []Edge[N] `json:"edges"`
	PageInfo PageInfo  `json:"pageInfo"`
}

func NewConnection[N any](hasPreviousPage, hasNextPage bool) *Connection[N] {
	return &Connection[N]{
		Edges: make([]Edge[N], 0),
		PageInfo: PageInfo{
			HasPreviousPage: hasPreviousPage,
			HasNextPage:     hasNextPage,
		},
	}
}

// Append adds an edge and moves the page boundary cursors accordingly.
func (c *Connection[N]) Append(cursor string, node N) {
	c.Edges = append(c.Edges, Edge[N]{Cursor: cursor, Node: node})
	if c.PageInfo.StartCursor == nil {
		start := cursor
		c.PageInfo.StartCursor = &start
	}
	c.PageInfo.EndCursor = &cursor
}

func (c *Connection[N]) Nodes() []N {
	nodes := make([]N, 0, len(c.Edges))
	for _, e := range c.Edges {
		nodes = append(nodes, e.Node)
	}
	return nodes
}
