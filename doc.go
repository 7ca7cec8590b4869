// Package garrison is a fault-tolerant actor-supervision runtime: a single
// supervision tree, OneForOne/OneForAll/RestForOne restart strategies,
// panic isolation around every child, and a re-entrant fault-recovery
// trampoline. See the envelope, mailbox, child, node, tree and spawn
// packages for the pieces this package assembles into a process-wide
// platform.
package garrison
