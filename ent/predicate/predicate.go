// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentSession is the predicate function for agentsession builders.
type AgentSession func(*sql.Selector)

// ChildRelation is the predicate function for childrelation builders.
type ChildRelation func(*sql.Selector)

// Punch is the predicate function for punch builders.
type Punch func(*sql.Selector)

// PunchCardRequirement is the predicate function for punchcardrequirement builders.
type PunchCardRequirement func(*sql.Selector)

// SessionMessage is the predicate function for sessionmessage builders.
type SessionMessage func(*sql.Selector)

// ToolCall is the predicate function for toolcall builders.
type ToolCall func(*sql.Selector)
