// This file is part of cycle6502.
//
// cycle6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cycle6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cycle6502.  If not, see <https://www.gnu.org/licenses/>.

// Package functional_test runs the 6502 functional test by Klaus Dormann.
// https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The binary is not included in the repository. To run the test, copy
// bin_files/6502_functional_test.bin from the Github repository to the
// testdata directory of this package. The binary is the unmodified 64K image
// assembled with the default options.
//
// The test does not depend on the cycle timing of any instruction and so is
// unaffected by the shortened subroutine instructions of this emulation.
package functional_test
