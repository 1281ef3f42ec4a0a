// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Activity is the predicate function for activity builders.
type Activity func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Clinic is the predicate function for clinic builders.
type Clinic func(*sql.Selector)

// Contact is the predicate function for contact builders.
type Contact func(*sql.Selector)

// FollowUpTask is the predicate function for followuptask builders.
type FollowUpTask func(*sql.Selector)

// LeadSession is the predicate function for leadsession builders.
type LeadSession func(*sql.Selector)

// Review is the predicate function for review builders.
type Review func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
