// Package textutil derives safe file names for digest output.
package textutil
