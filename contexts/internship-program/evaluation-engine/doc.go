// Package evaluationengine implements tutor evaluation of internship
// proposals inside the internship-program context.
//
// The module owns the append-only comment log, the vote admission rules
// (section uniqueness, final-vote exclusivity, the closed-evaluation gate)
// and the derivation of a proposal's status from its accumulated votes. It
// keeps business rules in application/domain layers and isolates
// infrastructure concerns behind ports and adapters.
package evaluationengine
