// Package budwood provides the material planning model for propagation orders.
//
// Budwood is the scion material consumed when multiplying plant stock. How much
// an order needs depends on the propagation method: grafting and cuttings
// consume material per plant, tissue culture multiplies from small samples, and
// seed propagation consumes none.
//
// The package contains:
//   - PropagationMethod: the multiplication method with its consumption ratio
//   - Plan: the immutable requirement breakdown produced by Calculate
//   - Calculate: the pure requirement calculation with waste and safety buffers
//
// All arithmetic rounds up: under-provisioning scion material stalls a grafting
// run, while a small surplus only costs storage space.
package budwood
