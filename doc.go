// Package gridbot plans the moves of a robot walking a 2-D grid towards one or
// more target cells.
//
// It exposes four planners behind a single Robot:
//
//   - BFS: uninformed shortest path to the primary target.
//   - AStar: Manhattan-guided best-first search to the primary target.
//   - MultiBFS: repeated flood fills, each collecting the nearest unvisited target.
//   - MultiAStar: repeated best-first searches towards the closest unvisited target.
//
// Planning never moves the robot. The stored plan is handed out one Action at a
// time by NextAction, or replayed against the environment with a Stepper.
package gridbot
