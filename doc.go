/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package elements decodes GS1 element strings: the concatenated data
// payloads carried by GS1 barcodes such as GS1-128 and GS1 DataMatrix.
//
// An element string is a sequence of fields, each introduced by a 2-4 digit
// Application Identifier (AI) that determines the field's meaning and the
// lengths its value may take. Fixed-length fields run exactly their defined
// length; variable-length fields run until a terminator character -- FNC1
// in the symbology, usually presented by readers as ASCII 29, the Group
// Separator -- or until the end of the payload. The rules live in the GS1
// General Specifications:
// - https://www.gs1.org/sites/default/files/docs/barcodes/GS1_General_Specifications.pdf
//
// This package starts where the barcode reader stops: its input is the
// already-decoded text of the symbol, with FNC1/GS present as literal
// bytes. It does not detect symbologies, talk to scanners, or judge the
// business plausibility of field contents (it will happily return a GTIN
// with a bad check digit); it splits the payload on the AI length rules and
// gives typed access to the pieces.
//
// Decode splits a payload into a Record using the standard AI table; a
// Decoder built with NewDecoder does the same under explicit options (a
// custom table, a different terminator, a duplicate-AI policy). A Record
// maps each AI code to its raw value and layers GS1's value conventions on
// top: Numeric applies the implied-decimal-point rule of the measure AIs,
// and DueDate applies the "day 00 means end of month" rule of AI 12.
package elements
