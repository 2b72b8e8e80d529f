// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview offers a HTTP server running locally with runtime
// statistics. The server is only available when the program has been built
// with the statsview build tag. Underlying functionality is provided by
// "github.com/go-echarts/statsview".
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12800/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12800/debug/pprof/
package statsview

// Address is the default address of the statsview server.
const Address = "localhost:12800"

const url = "/debug/statsview"
