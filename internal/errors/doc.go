// Package errors provides the structured error type shared by every layer of
// the encounter service.
//
// Errors carry a Code, a caller-facing message, an optional cause and
// metadata. Codes map onto HTTP statuses through Code.HTTPStatus, so handlers
// never decide status codes on their own.
//
// # Encounter taxonomy
//
//   - InvalidExpression: malformed dice notation (CodeInvalidArgument)
//   - MonsterNotFound: catalog miss (CodeNotFound)
//   - Storage: unreadable, unwritable or undecodable catalog document
//     (CodeInternal, or CodeDataLoss for decode failures)
//
// Wrapping keeps the original code:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to resolve monster")
//	}
//
// Config and input validation use the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", monster.Name, vb)
//	errors.ValidateNonNegative("challenge.xp", monster.Challenge.XP, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
