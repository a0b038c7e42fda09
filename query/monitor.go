package query

import "github.com/poiesic/paranuara/core"

// JoinMonitor provides hooks to observe a friends-in-common join.
// Implement this interface to trace intermediate steps of JoinFriends.
type JoinMonitor interface {
	Start(person1ID, person2ID core.PersonID)
	AfterIntersection(ids []core.PersonID)
	AfterFriendRetrieval(friends []*core.Person)
	Excluded(friend *core.Person)
	Finish(result *JoinResult)
}

// noopMonitor is a no-op implementation of JoinMonitor
type noopMonitor struct{}

var _ JoinMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_, _ core.PersonID)              {}
func (n *noopMonitor) AfterIntersection(_ []core.PersonID)   {}
func (n *noopMonitor) AfterFriendRetrieval(_ []*core.Person) {}
func (n *noopMonitor) Excluded(_ *core.Person)               {}
func (n *noopMonitor) Finish(_ *JoinResult)                  {}
