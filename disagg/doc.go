// Package disagg splits coarse-taxonomy totals into a finer taxonomy.
//
// Two restricted, one-sided relatives of the reflection engine live here:
//
//   - Disaggregate: distributes an aggregate vector down to a finer
//     taxonomy through a single correspondence + weight vector, under a
//     strict partition (every fine sector belongs to at most one
//     aggregate). The partition makes exact conservation achievable, so
//     the total-preservation postcondition is a hard error here — unlike
//     the reflection engine's soft diagnostic.
//   - SplitByAggRatio: splits one vector into two complementary vectors
//     using a coarse ratio broadcast down through a correspondence. The
//     two parts sum to the input exactly, by construction.
package disagg
