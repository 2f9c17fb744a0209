// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package platform implements the operating system collaborators of the
// terminal client: the clipboard, the deep link launcher, the contacts
// directory and the QR encoder.
package platform
