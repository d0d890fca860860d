package fabric

// Peer is one participant in a Fabric: a handle a backend uses to call the
// four collective primitives and, for the root/worker lifecycle protocol
// backend C and D use, to exchange Commands.
type Peer struct {
	rank int
	n    int
	hub  *hub

	cmdCh []chan Command
}

// Rank returns this peer's index, 0..n-1.
func (p *Peer) Rank() int {
	return p.rank
}

// Size returns the number of peers in the fabric this peer belongs to.
func (p *Peer) Size() int {
	return p.n
}

// Broadcast sends payload from root to every peer. Non-root callers should
// pass nil; every peer, including root, receives the same slice back with
// one entry per rank, all equal to root's payload — useful for tests that
// want to assert on what a specific rank ended up holding.
func (p *Peer) Broadcast(root int, payload []byte) [][]byte {
	result := p.hub.broadcast.enter(p.rank, payload, func(contributions []any) any {
		msg, _ := contributions[root].([]byte)
		out := make([][]byte, len(contributions))
		for i := range out {
			out[i] = msg
		}
		return out
	})
	return result.([][]byte)
}

// AllReduceMin contributes values (this peer's own, possibly several;
// backends C and D each pass one value per peer, already reduced across a
// hybrid peer's threads) and returns the minimum across every value every
// peer contributed.
func (p *Peer) AllReduceMin(values []int) int {
	result := p.hub.reduceMin.enter(p.rank, values, func(contributions []any) any {
		min := int(^uint(0) >> 1) // math.MaxInt without importing math here
		for _, c := range contributions {
			for _, v := range c.([]int) {
				if v < min {
					min = v
				}
			}
		}
		return min
	})
	return result.(int)
}

// AllReduceMax mirrors AllReduceMin, returning the maximum contributed
// value. Backend C uses it over per-peer "has solution" flags encoded as
// rank-or-(-1) to elect the publishing peer: the highest rank that solved
// wins the election.
func (p *Peer) AllReduceMax(values []int) int {
	result := p.hub.reduceMax.enter(p.rank, values, func(contributions []any) any {
		max := -1 << 63
		for _, c := range contributions {
			for _, v := range c.([]int) {
				if v > max {
					max = v
				}
			}
		}
		return max
	})
	return result.(int)
}

// Barrier blocks until every peer in the fabric has called Barrier.
func (p *Peer) Barrier() {
	p.hub.barrierPt.enter(p.rank, struct{}{}, func([]any) any { return struct{}{} })
}

// Command sends cmd to the peer at rank, non-blocking (the channel is
// buffered to depth 1; the root issues at most one outstanding command per
// peer per iteration).
func (p *Peer) Command(rank int, cmd Command) {
	p.cmdCh[rank] <- cmd
}

// Recv blocks until the root sends this peer a Command.
func (p *Peer) Recv() Command {
	return <-p.cmdCh[p.rank]
}
