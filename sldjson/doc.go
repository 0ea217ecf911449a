/*
 * doc.go, part of gosld.
 *
 *
 * Copyright 2026 The goSLD authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package sldjson implements the serialization of goSLD results and
//errors, and the unserialization of requests. It's planned use is the
//communication of goSLD with other, independent programs which can
//be written in languages other than Go, for instance, via UNIX pipes:
//the external program writes one JSON Request per line, and reads back
//one Result, or one Error, per line.
package sldjson
