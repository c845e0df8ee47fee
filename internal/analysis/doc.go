// Package analysis characterises a recorded run.
//
//   - [Classify]: extinction, still life and cycle detection over the frames
//   - [Populations]: live cell count per frame
//   - [PowerSpectrum]: frequency content of the population curve
//
// Cycle detection works on recorded frames, so a period is reported in
// frames; multiply by the run's interval for sweeps.
package analysis
